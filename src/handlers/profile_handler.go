package handlers

import (
	"encoding/json"
	db "kakeibo-server/src/db/sql"
	"kakeibo-server/src/util"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func ChangePassword(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		email := r.Context().Value("email").(string)

		var req struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode change password request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidatePassword(req.NewPassword) {
			log.Printf("ERROR: New password validation failed - User: %s", userID)
			http.Error(w, "password must be at least 8 characters with uppercase, lowercase, digit, and special character", http.StatusBadRequest)
			return
		}

		profile, err := db.GetProfileByEmail(r.Context(), pool, email)
		if err != nil {
			log.Printf("ERROR: Failed to load profile for password change - User: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := bcrypt.CompareHashAndPassword(profile.PasswordHash, []byte(req.CurrentPassword)); err != nil {
			log.Printf("ERROR: Wrong current password during password change - User: %s", userID)
			http.Error(w, "current password is incorrect", http.StatusUnauthorized)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash new password - User: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := db.UpdatePassword(r.Context(), pool, userID, string(hashed)); err != nil {
			log.Printf("ERROR: Failed to update password - User: %s: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Password changed - User: %s", userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "password updated successfully",
		})
	}
}
