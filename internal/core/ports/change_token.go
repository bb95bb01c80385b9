package ports

// ChangeTokenSource produces change tokens for copied file dependencies.
//
//go:generate go run go.uber.org/mock/mockgen -source=change_token.go -destination=mocks/mock_change_token.go -package=mocks
type ChangeTokenSource interface {
	// Next returns a token that differs from every previously returned token.
	Next() (string, error)
}
