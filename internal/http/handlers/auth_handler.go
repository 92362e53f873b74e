// README: Auth handlers; register and login issue JWTs for the UI.
package handlers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "fleetops/internal/auth"
    "fleetops/internal/modules/user"
)

type AuthHandler struct {
    users  *user.Service
    tokens *auth.TokenManager
}

func NewAuthHandler(users *user.Service, tokens *auth.TokenManager) *AuthHandler {
    return &AuthHandler{users: users, tokens: tokens}
}

type registerUserReq struct {
    Name     string `json:"name" binding:"required,min=2,max=100"`
    Email    string `json:"email" binding:"required"`
    Password string `json:"password" binding:"required,min=6"`
    Role     string `json:"role" binding:"required,oneof=manager dispatcher safety analyst"`
}

type loginReq struct {
    Email    string `json:"email" binding:"required"`
    Password string `json:"password" binding:"required"`
}

type userResponse struct {
    ID   int64  `json:"id"`
    Name string `json:"name"`
    Role string `json:"role"`
}

type authResponse struct {
    Token string       `json:"token"`
    User  userResponse `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
    var req registerUserReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    if err := validate.Var(req.Email, "required,email"); err != nil {
        writeError(c, http.StatusBadRequest, "email is not valid")
        return
    }
    u, err := h.users.Register(c.Request.Context(), user.RegisterCommand{
        Name:     req.Name,
        Email:    req.Email,
        Password: req.Password,
        Role:     user.Role(req.Role),
    })
    if err != nil {
        writeDomainError(c, err)
        return
    }
    h.respondWithToken(c, http.StatusCreated, u)
}

func (h *AuthHandler) Login(c *gin.Context) {
    var req loginReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    h.respondWithToken(c, http.StatusOK, u)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, u *user.User) {
    token, err := h.tokens.Issue(u.ID, u.Name, string(u.Role))
    if err != nil {
        writeError(c, http.StatusInternalServerError, "internal error")
        return
    }
    writeJSON(c, status, authResponse{
        Token: token,
        User:  userResponse{ID: u.ID, Name: u.Name, Role: string(u.Role)},
    })
}
