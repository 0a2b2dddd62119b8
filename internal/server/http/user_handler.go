package http

import (
	"encoding/json"
	"net/http"
	"regexp"

	"onboard/internal/logging"
	"onboard/internal/user"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// UserHandler serves submitted onboarding records.
type UserHandler struct {
	store  user.Store
	logger logging.Logger
}

// NewUserHandler constructs the user handler.
func NewUserHandler(store user.Store) *UserHandler {
	return &UserHandler{
		store:  store,
		logger: logging.NewComponentLogger("UserHandler"),
	}
}

// HandleCreate stores one submission. The client validates before sending;
// this repeats the required-field checks so a drifted client cannot create
// records without an identity.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var sub user.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSONError(h.logger, w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	fields := map[string]string{}
	if sub.Email == "" {
		fields["email"] = "Email is required"
	} else if !emailPattern.MatchString(sub.Email) {
		fields["email"] = "Invalid email"
	}
	if sub.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		writeFieldErrors(h.logger, w, fields)
		return
	}

	rec, err := h.store.Create(r.Context(), sub)
	if err != nil {
		h.logger.Error("Failed to create user: %v", err)
		writeJSONError(h.logger, w, http.StatusInternalServerError, "failed to create user")
		return
	}
	h.logger.Info("Created user %d", rec.ID)
	writeJSON(h.logger, w, http.StatusOK, rec)
}

// HandleList returns all records in server order.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		writeJSONError(h.logger, w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if records == nil {
		records = []user.Record{}
	}
	writeJSON(h.logger, w, http.StatusOK, records)
}
