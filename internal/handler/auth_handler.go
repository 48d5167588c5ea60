package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/yusufkecer/health-tracker/internal/auth"
	"github.com/yusufkecer/health-tracker/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const mysqlDuplicateEntry = 1062

type AccountStore interface {
	Create(ctx context.Context, email, passwordHash string) (string, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// AuthHandler is the sign-in provider behind the dashboard's login link.
// Form posts get a session cookie and a redirect; JSON posts get a token.
type AuthHandler struct {
	tokens     *auth.TokenIssuer
	repo       AccountStore
	renderer   *Renderer
	cookieName string
	cookieTTL  time.Duration
	logger     *zap.Logger
}

func NewAuthHandler(
	tokens *auth.TokenIssuer,
	repo AccountStore,
	renderer *Renderer,
	cookieName string,
	cookieTTL time.Duration,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		tokens:     tokens,
		repo:       repo,
		renderer:   renderer,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
		logger:     logger,
	}
}

type loginPage struct {
	Email string
	Error string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login.html", loginPage{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, isJSON, err := decodeCredentials(r)
	if err != nil {
		h.fail(w, isJSON, http.StatusBadRequest, "", "invalid request body")
		return
	}

	email := domain.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		h.fail(w, isJSON, http.StatusBadRequest, email, "email and password are required")
		return
	}
	if !domain.ValidEmail(email) {
		h.fail(w, isJSON, http.StatusBadRequest, email, "invalid email format")
		return
	}
	if len(req.Password) < 6 {
		h.fail(w, isJSON, http.StatusBadRequest, email, "password must be at least 6 characters")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.fail(w, isJSON, http.StatusInternalServerError, email, "failed to hash password")
		return
	}

	accountID, err := h.repo.Create(r.Context(), email, string(passwordHash))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			h.fail(w, isJSON, http.StatusConflict, email, "email already exists")
			return
		}
		h.logger.Error("failed to create account", zap.Error(err))
		h.fail(w, isJSON, http.StatusInternalServerError, email, "failed to create account")
		return
	}

	h.issue(w, r, isJSON, http.StatusCreated, accountID, email)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, isJSON, err := decodeCredentials(r)
	if err != nil {
		h.fail(w, isJSON, http.StatusBadRequest, "", "invalid request body")
		return
	}

	email := domain.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		h.fail(w, isJSON, http.StatusBadRequest, email, "email and password are required")
		return
	}
	if !domain.ValidEmail(email) {
		h.fail(w, isJSON, http.StatusBadRequest, email, "invalid email format")
		return
	}

	account, err := h.repo.GetByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to look up account", zap.Error(err))
		h.fail(w, isJSON, http.StatusInternalServerError, email, "failed to login")
		return
	}
	if account == nil {
		h.fail(w, isJSON, http.StatusUnauthorized, email, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		h.fail(w, isJSON, http.StatusUnauthorized, email, "invalid email or password")
		return
	}

	h.issue(w, r, isJSON, http.StatusOK, account.ID, account.Email)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, isJSON bool, status int, accountID, email string) {
	token, err := h.tokens.Generate(accountID, email)
	if err != nil {
		h.fail(w, isJSON, http.StatusInternalServerError, email, "failed to generate token")
		return
	}

	if isJSON {
		writeJSON(w, status, domain.TokenResponse{Token: token})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) fail(w http.ResponseWriter, isJSON bool, status int, email, msg string) {
	if isJSON {
		writeError(w, status, msg)
		return
	}
	h.renderer.Render(w, status, "login.html", loginPage{Email: email, Error: msg})
}

func decodeCredentials(r *http.Request) (domain.TokenRequest, bool, error) {
	var req domain.TokenRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, true, err
	}

	if err := r.ParseForm(); err != nil {
		return req, false, err
	}
	req.Email = r.PostFormValue("email")
	req.Password = r.PostFormValue("password")
	return req, false, nil
}
