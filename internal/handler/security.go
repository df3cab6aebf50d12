package handler

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/sustainafood/grocery-orders/gen/oas"
	"github.com/sustainafood/grocery-orders/internal/domain/auth"
)

// Claims is the payload of the identity service's access tokens.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	Brand  string `json:"brand,omitempty"`
	jwt.RegisteredClaims
}

type callerKey struct{}

// CallerFromContext returns the caller stored by SecurityHandler.HandleBearerAuth.
func CallerFromContext(ctx context.Context) (auth.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(auth.Caller)
	return c, ok
}

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// SecurityHandler implements ogen's SecurityHandler interface, authenticating
// requests carrying an HS256 bearer token.
type SecurityHandler struct {
	secret []byte
	parser *jwt.Parser
	now    func() time.Time
}

// NewSecurityHandler creates a SecurityHandler verifying tokens with secret.
func NewSecurityHandler(secret []byte) *SecurityHandler {
	return &SecurityHandler{
		secret: secret,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
		now:    time.Now,
	}
}

// HandleBearerAuth verifies the bearer token of every operation and stores
// the caller in the context handed to the operation.
func (s *SecurityHandler) HandleBearerAuth(ctx context.Context, _ oas.OperationName, t oas.BearerAuth) (context.Context, error) {
	caller, err := s.Verify(t.Token)
	if err != nil {
		return ctx, err
	}

	ctx = context.WithValue(ctx, callerKey{}, caller)
	ctx = zctx.With(ctx,
		zap.String("user_id", caller.UserID),
		zap.String("role", string(caller.Role)),
	)
	return ctx, nil
}

// Verify validates a raw token and returns its identity.
func (s *SecurityHandler) Verify(token string) (auth.Caller, error) {
	if token == "" {
		return auth.Caller{}, errors.New("missing bearer token")
	}

	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return auth.Caller{}, errors.Wrap(err, "parse token")
	}
	if claims.UserID == "" {
		return auth.Caller{}, errors.New("token has no user id")
	}

	return auth.Caller{
		UserID: claims.UserID,
		Role:   auth.ParseRole(claims.Role),
		Email:  claims.Email,
		Brand:  claims.Brand,
	}, nil
}

// IssueToken signs a token for caller valid for ttl.
func (s *SecurityHandler) IssueToken(caller auth.Caller, ttl time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: caller.UserID,
		Role:   string(caller.Role),
		Email:  caller.Email,
		Brand:  caller.Brand,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}
