package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esportshub/backend/internal/common"
	"github.com/esportshub/backend/internal/server/models"
	"github.com/esportshub/backend/internal/server/services"
)

// sessionCookieName carries the opaque session token back to the browser.
const sessionCookieName = "session_token"

type errorResponse struct {
	Error string `json:"error"`
}

type authResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    *models.PublicUser `json:"user"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// --- auth ---

func (s *Server) register(c echo.Context) error {
	var req services.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	user, session, err := s.users.Register(c.Request().Context(), req)
	if err != nil {
		return s.authError(c, err)
	}

	s.setSessionCookie(c, session)
	return c.JSON(http.StatusOK, authResponse{Success: true, Message: "Registration successful", User: user})
}

func (s *Server) login(c echo.Context) error {
	var req services.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	user, session, err := s.users.Login(c.Request().Context(), req)
	if err != nil {
		return s.authError(c, err)
	}

	s.setSessionCookie(c, session)
	return c.JSON(http.StatusOK, authResponse{Success: true, Message: "Login successful", User: user})
}

// authError maps service failures onto the auth endpoints' status contract.
// Driver detail stays in the log; clients get the fixed messages.
func (s *Server) authError(c echo.Context, err error) error {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.Is(err, common.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, errorResponse{Error: "Email already registered"})
	case errors.Is(err, common.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
	case errors.Is(err, common.ErrStorage):
		s.log.Error(c.Request().Context(), "storage failure", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error occurred"})
	default:
		s.log.Error(c.Request().Context(), "auth failure", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An error occurred"})
	}
}

func (s *Server) setSessionCookie(c echo.Context, session *models.Session) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.Expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// --- content ---

func (s *Server) news(c echo.Context) error {
	news, err := s.content.News(c.Request().Context())
	if err != nil {
		return s.contentError(c, err)
	}
	return c.JSON(http.StatusOK, news)
}

func (s *Server) tournaments(c echo.Context) error {
	tournaments, err := s.content.Tournaments(c.Request().Context())
	if err != nil {
		return s.contentError(c, err)
	}
	return c.JSON(http.StatusOK, tournaments)
}

func (s *Server) teams(c echo.Context) error {
	teams, err := s.content.Teams(c.Request().Context())
	if err != nil {
		return s.contentError(c, err)
	}
	return c.JSON(http.StatusOK, teams)
}

func (s *Server) players(c echo.Context) error {
	players, err := s.content.Players(c.Request().Context())
	if err != nil {
		return s.contentError(c, err)
	}
	return c.JSON(http.StatusOK, players)
}

func (s *Server) contentError(c echo.Context, err error) error {
	s.log.Error(c.Request().Context(), "content read failure", "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error"})
}

// --- forms ---

func (s *Server) contact(c echo.Context) error {
	var req services.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}
	if err := s.forms.SubmitContact(c.Request().Context(), req); err != nil {
		return s.formError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Message sent successfully"})
}

func (s *Server) newsletter(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}
	if err := s.forms.SubscribeNewsletter(c.Request().Context(), req.Email); err != nil {
		return s.formError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Successfully subscribed to newsletter"})
}

func (s *Server) tournamentRegister(c echo.Context) error {
	var req services.TournamentRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}
	if err := s.forms.RegisterTournament(c.Request().Context(), req); err != nil {
		return s.formError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Registration submitted successfully"})
}

func (s *Server) formError(c echo.Context, err error) error {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Error()})
	}
	s.log.Error(c.Request().Context(), "form submission failure", "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error"})
}
