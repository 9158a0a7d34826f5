package handlers

import (
	"encoding/json"
	"errors"
	"kakeibo-server/src/apperr"
	db "kakeibo-server/src/db/sql"
	"kakeibo-server/src/models"
	"kakeibo-server/src/util"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Name of the ledger auto-provisioned for every new account.
const defaultLedgerName = "My Ledger"

func Register(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during registration - Email: %s", req.Email)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}

		if !util.ValidatePassword(req.Password) {
			log.Printf("ERROR: Password validation failed during registration - Email: %s", req.Email)
			http.Error(w, "password must be at least 8 characters with uppercase, lowercase, digit, and special character", http.StatusBadRequest)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		profile, err := db.CreateProfile(r.Context(), pool, req.Email, string(hashedPassword))
		if err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				log.Printf("ERROR: Registration failed - email already exists - Email: %s", req.Email)
				http.Error(w, "email already registered", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create profile for %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Every account starts with one ledger so first load never hits the
		// empty state. Provisioned exactly once, here, never at list time.
		ledger, err := db.CreateLedgerWithOwner(r.Context(), pool, profile.ID, defaultLedgerName)
		if err != nil {
			log.Printf("ERROR: Failed to provision default ledger for %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := db.SetCurrentLedger(r.Context(), pool, profile.ID, ledger.ID); err != nil {
			log.Printf("ERROR: Failed to save default ledger selection for %s: %v", req.Email, err)
		}

		log.Printf("INFO: Successful registration - Email: %s, ID: %s", profile.Email, profile.ID)

		tokenString, err := issueToken(profile.ID, profile.Email)
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for %s: %v", profile.Email, err)
			http.Error(w, "Error generating token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"token": tokenString,
		})
	}
}

func Login(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		profile, err := db.GetProfileByEmail(r.Context(), pool, strings.ToLower(strings.TrimSpace(credentials.Email)))
		if err != nil {
			log.Printf("ERROR: Failed to find user during login - Email: %s: %v", credentials.Email, err)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword(profile.PasswordHash, []byte(credentials.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for %s from IP %s", credentials.Email, r.RemoteAddr)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		tokenString, err := issueToken(profile.ID, profile.Email)
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for %s: %v", profile.Email, err)
			http.Error(w, "Error generating token", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Successful login - Email: %s, ID: %s", profile.Email, profile.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": tokenString,
		})
	}
}

func Me(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		profile, err := db.GetProfileByID(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to load profile %s: %v", userID, err)
			writeAppError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	}
}

func issueToken(userID uuid.UUID, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 168).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// writeAppError maps a taxonomy error to its status code. Internal detail is
// never echoed back on storage failures.
func writeAppError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	http.Error(w, msg, status)
}
