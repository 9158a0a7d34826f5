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
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AddMember invites a registered user to a ledger by email. Only owners may
// invite; the new member always gets the plain member role.
func AddMember(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		ledgerID, err := uuid.Parse(chi.URLParam(r, "ledger_id"))
		if err != nil {
			log.Printf("ERROR: Invalid ledger id param: %s", chi.URLParam(r, "ledger_id"))
			http.Error(w, "invalid ledger id", http.StatusBadRequest)
			return
		}

		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add member request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during invite - Email: %s", req.Email)
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}

		role, err := db.GetMemberRole(r.Context(), pool, ledgerID, userID)
		if err != nil {
			log.Printf("ERROR: Membership check failed for user %s on ledger %s: %v", userID, ledgerID, err)
			writeAppError(w, err)
			return
		}
		if role != models.RoleOwner {
			log.Printf("ERROR: Non-owner %s attempted invite on ledger %s", userID, ledgerID)
			http.Error(w, "only the ledger owner can invite members", http.StatusForbidden)
			return
		}

		invitee, err := db.GetProfileByEmail(r.Context(), pool, req.Email)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				log.Printf("ERROR: Invite failed - no registered user for %s", req.Email)
				http.Error(w, "user not registered", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Profile lookup failed for %s: %v", req.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := db.AddMember(r.Context(), pool, ledgerID, invitee.ID); err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				log.Printf("ERROR: Invite failed - %s already a member of ledger %s", req.Email, ledgerID)
				http.Error(w, "already a member of this ledger", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to add member %s to ledger %s: %v", invitee.ID, ledgerID, err)
			http.Error(w, "failed to add member", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Added member %s to ledger %s", invitee.ID, ledgerID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.LedgerMember{
			LedgerID: ledgerID,
			UserID:   invitee.ID,
			Role:     models.RoleMember,
			Email:    invitee.Email,
		})
	}
}

func GetMembers(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(uuid.UUID)
		ledgerID, err := uuid.Parse(chi.URLParam(r, "ledger_id"))
		if err != nil {
			log.Printf("ERROR: Invalid ledger id param: %s", chi.URLParam(r, "ledger_id"))
			http.Error(w, "invalid ledger id", http.StatusBadRequest)
			return
		}

		if _, err := db.GetMemberRole(r.Context(), pool, ledgerID, userID); err != nil {
			log.Printf("ERROR: Membership check failed for user %s on ledger %s: %v", userID, ledgerID, err)
			writeAppError(w, err)
			return
		}

		members, err := db.ListMembers(r.Context(), pool, ledgerID)
		if err != nil {
			log.Printf("ERROR: Failed to list members for ledger %s: %v", ledgerID, err)
			http.Error(w, "failed to get members", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(members)
	}
}
