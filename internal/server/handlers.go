package server

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/hirepilot/hirepilot/internal/server/analyze"
	"github.com/hirepilot/hirepilot/internal/server/auth"
	"github.com/hirepilot/hirepilot/internal/server/users"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

func (a *App) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "HirePilot backend is running"})
}

// handleToken exchanges form-encoded credentials for a bearer token.
func (a *App) handleToken(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := a.users.Authenticate(username, password)
	if err != nil {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Incorrect username or password",
		})
	}

	token, err := a.tokens.Issue(user.Username)
	if err != nil {
		a.logger.Error(c.UserContext(), "token issue failed", "error", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (a *App) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Username and password are required")
	}

	user, err := a.users.Register(users.RegistrationInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			return fiber.NewError(fiber.StatusBadRequest, "Username already registered")
		}
		a.logger.Error(c.UserContext(), "registration failed", "error", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(toUserResponse(user))
}

func (a *App) handleMe(c *fiber.Ctx) error {
	user, err := a.users.Get(auth.CurrentUser(c))
	if err != nil {
		return fiber.ErrUnauthorized
	}
	return c.JSON(toUserResponse(user))
}

// handleAnalyzeResumes runs the batch analysis: one job description, one or
// more resume files, reports sorted best-first.
func (a *App) handleAnalyzeResumes(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Expected multipart form data")
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return fiber.NewError(fiber.StatusBadRequest, "job_description is required")
	}

	fileHeaders := form.File["resume_files"]
	if len(fileHeaders) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "At least one resume file is required")
	}

	uploads := make([]analyze.Upload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		data, err := readUpload(fh)
		if err != nil {
			a.logger.Error(c.UserContext(), "upload read failed", "filename", fh.Filename, "error", err)
			return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file "+fh.Filename)
		}
		uploads = append(uploads, analyze.Upload{
			Filename:  fh.Filename,
			MediaType: fh.Header.Get(fiber.HeaderContentType),
			Data:      data,
		})
	}

	reports := a.analyzer.AnalyzeBatch(c.UserContext(), jobDescription, uploads)
	return c.JSON(reports)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func toUserResponse(user users.User) userResponse {
	return userResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	}
}
