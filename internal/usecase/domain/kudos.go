// Package domain contains application services orchestrating domain logic by kudos.
package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/google/uuid"
)

// Ledger returns a snapshot of every kudos ever issued, in insertion order.
func (u *Usecase) Ledger(ctx context.Context) ([]entities.Kudos, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListKudos(ctx)
}

// IssueKudos validates a request and appends it to the ledger.
// Checks run in a fixed order and the first failing one decides the rejection.
func (u *Usecase) IssueKudos(ctx context.Context, req entities.IssueRequest) (*entities.Kudos, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown kudos type %q", entities.ErrInvalidArgument, req.Type)
	}

	unlock := u.locks.lock(req.SenderID)
	defer unlock()

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	if err := checkIssuance(users, req); err != nil {
		u.logRejection(req, err)
		return nil, err
	}

	ledger, err := u.repo.ListKudos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kudos: %w", err)
	}

	now := u.now()
	limits := computeLimits(users, ledger, req.SenderID, currentMonth(now, u.loc))
	if limits.Remaining(req.Type) <= 0 {
		err := entities.Reject(entities.ReasonQuotaExceeded, fmt.Sprintf("no %s kudos left this month", strings.ToLower(string(req.Type))))
		u.logRejection(req, err)
		return nil, err
	}

	entry := entities.Kudos{
		ID:         uuid.NewString(),
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Type:       req.Type,
		Message:    req.Message,
		CreatedAt:  now,
		Image:      req.Image,
	}.Clone()

	created, err := u.repo.AppendKudos(ctx, entry)
	if err != nil {
		u.log.Errorw("failed to append kudos", "error", err, "sender_id", req.SenderID)
		return nil, fmt.Errorf("append kudos: %w", err)
	}

	u.log.Infow("kudos issued",
		"kudos_id", created.ID,
		"sender_id", created.SenderID,
		"receiver_id", created.ReceiverID,
		"type", created.Type,
		"remaining", limits.Remaining(req.Type)-1,
	)
	return created, nil
}

// checkIssuance runs every validation that does not depend on the ledger.
func checkIssuance(users []entities.User, req entities.IssueRequest) error {
	sender, ok := findUser(users, req.SenderID)
	if !ok {
		return entities.Reject(entities.ReasonUnknownUser, "sender "+req.SenderID)
	}
	if _, ok := findUser(users, req.ReceiverID); !ok {
		return entities.Reject(entities.ReasonUnknownUser, "receiver "+req.ReceiverID)
	}
	if req.SenderID == req.ReceiverID {
		return entities.Reject(entities.ReasonSelfTarget, "")
	}
	if strings.TrimSpace(req.Message) == "" {
		return entities.Reject(entities.ReasonEmptyMessage, "")
	}
	if req.Type == entities.KudosGold {
		if sender.Role != entities.RoleTeamLead {
			return entities.Reject(entities.ReasonRoleNotAuthorized, "gold kudos require a team lead")
		}
		if !isDirectReport(users, sender.ID, req.ReceiverID) {
			return entities.Reject(entities.ReasonRecipientNotEligible, "receiver is not a direct report")
		}
	}
	return nil
}

func (u *Usecase) logRejection(req entities.IssueRequest, err error) {
	reason, _ := entities.RejectionReasonOf(err)
	u.log.Infow("kudos rejected",
		"reason", reason,
		"sender_id", req.SenderID,
		"receiver_id", req.ReceiverID,
		"type", req.Type,
	)
}

// KudosReceived returns every kudos the user received, newest first.
func (u *Usecase) KudosReceived(ctx context.Context, userID string) ([]entities.Kudos, error) {
	return u.userKudos(ctx, userID, func(k entities.Kudos) bool { return k.ReceiverID == userID })
}

// KudosGiven returns every kudos the user sent, newest first.
func (u *Usecase) KudosGiven(ctx context.Context, userID string) ([]entities.Kudos, error) {
	return u.userKudos(ctx, userID, func(k entities.Kudos) bool { return k.SenderID == userID })
}

func (u *Usecase) userKudos(ctx context.Context, userID string, keep func(entities.Kudos) bool) ([]entities.Kudos, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	ledger, err := u.repo.ListKudos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kudos: %w", err)
	}

	res := make([]entities.Kudos, 0)
	for _, k := range ledger {
		if keep(k) {
			res = append(res, k)
		}
	}
	return newestFirst(res), nil
}

// newestFirst orders by timestamp descending; on equal timestamps the later
// ledger entry comes first.
func newestFirst(list []entities.Kudos) []entities.Kudos {
	res := make([]entities.Kudos, len(list))
	for i, k := range list {
		res[len(list)-1-i] = k
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}

// RecipientOptions lists who the sender may address: direct reports for gold,
// everybody else for silver.
func (u *Usecase) RecipientOptions(ctx context.Context, senderID string, kudosType entities.KudosType) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !kudosType.Valid() {
		return nil, fmt.Errorf("%w: unknown kudos type %q", entities.ErrInvalidArgument, kudosType)
	}
	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if _, ok := findUser(users, senderID); !ok {
		return nil, entities.ErrUserNotFound
	}

	if kudosType == entities.KudosGold {
		return directReportsOf(users, senderID), nil
	}
	res := make([]entities.User, 0, len(users))
	for _, usr := range users {
		if usr.ID != senderID {
			res = append(res, usr)
		}
	}
	return res, nil
}
