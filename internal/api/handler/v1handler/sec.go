package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"bincatalog/internal/config"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/logger"
	"bincatalog/pkg/serrors"
)

// ActorKey is the context key under which the acting domain.Actor is stored.
const ActorKey = CtxKey("Actor")

// CtxKey is a string-based type used for values stored in request contexts.
type CtxKey string

type SecHandlerOptions struct {
	// PublicKey verifies RS256 bearer tokens. When empty tokens are not
	// required and every request acts as DefaultActor.
	PublicKey string
	// DefaultActor is used for requests without a bearer token.
	DefaultActor string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey:    cfg.JWT.PublicKey,
		DefaultActor: cfg.HTTP.DefaultActor,
	}
}

// SecHandler resolves the actor of a request from its bearer token.
type SecHandler struct {
	options   *SecHandlerOptions
	publicKey *rsa.PublicKey
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	sh := &SecHandler{options: options}
	if strings.TrimSpace(options.PublicKey) == "" {
		return sh, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	sh.publicKey = key

	return sh, nil
}

// HandleBearerAuth verifies token and stores its subject as the actor of ctx.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.publicKey == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "bearer tokens are not accepted")
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		logger.Debug(ctx, "rejected bearer token", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	actor := domain.SomeActor(subject)
	if !actor.IsSet() {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return context.WithValue(ctx, ActorKey, actor), nil
}

// Middleware attaches the actor of every request to its context. Requests
// without an Authorization header act as the default actor; requests with an
// invalid token are rejected.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ActorKey, domain.SomeActor(s.options.DefaultActor))))

			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "unsupported authorization scheme"))

			return
		}

		ctx, err := s.HandleBearerAuth(ctx, strings.TrimSpace(token))
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext returns the actor stored by SecHandler, or the absent actor.
func ActorFromContext(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(ActorKey).(domain.Actor)

	return actor
}
