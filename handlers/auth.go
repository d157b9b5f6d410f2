package handlers

import (
	"net/http"

	"github.com/satheeshds/billing/models"
)

// SignUp creates an account
// @Summary      Sign up
// @Description  Create an email/password account and start a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.SignUpInput  true  "New account"
// @Success      201          {object}  Response{data=auth.Session}
// @Failure      400          {object}  Response{error=string}
// @Failure      409          {object}  Response{error=string}
// @Router       /auth/signup [post]
func SignUp(w http.ResponseWriter, r *http.Request) {
	var input models.SignUpInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	sess, err := Auth.SignUp(r.Context(), input)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// SignIn starts a session for an existing account
// @Summary      Log in
// @Description  Sign in with email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.SignInInput  true  "Credentials"
// @Success      200          {object}  Response{data=auth.Session}
// @Failure      401          {object}  Response{error=string}
// @Failure      429          {object}  Response{error=string}
// @Router       /auth/login [post]
func SignIn(w http.ResponseWriter, r *http.Request) {
	var input models.SignInInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	sess, err := Auth.SignIn(r.Context(), input)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// GuestSignIn starts an anonymous session
// @Summary      Continue as guest
// @Description  Start an anonymous session. Guests can build and print bills but not save them.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response{data=auth.Session}
// @Failure      403  {object}  Response{error=string}
// @Router       /auth/guest [post]
func GuestSignIn(w http.ResponseWriter, r *http.Request) {
	sess, err := Auth.SignInAnonymously()
	if err != nil {
		writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Me returns the signed-in user
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response{data=auth.CurrentUser}
// @Router       /auth/me [get]
// @Security     BearerAuth
func Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r))
}

// SignOut discards the caller's active bill. Tokens are stateless and simply
// expire.
// @Summary      Sign out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
// @Security     BearerAuth
func SignOut(w http.ResponseWriter, r *http.Request) {
	Sessions.Drop(currentUser(r).ID)
	w.WriteHeader(http.StatusNoContent)
}
