package middleware

import (
	"log/slog"

	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/delivery/http/cookie"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware gates routes on a session cookie that resolves to a user.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	cookie   *cookie.SessionCookie
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, sessionCookie *cookie.SessionCookie) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		cookie:   sessionCookie,
	}
}

// RequireLogin rejects the request with ErrUnauthorized unless the cookie names a live session.
// On success the user id is available through deliverycontext.GetUserID.
func (m *SessionMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userID, ok, err := m.sessions.Resolve(ctx, m.cookie.Token(c))
		if err != nil {
			return errors.Wrap(err, "failed to resolve session")
		}
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetUserID(c, userID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
