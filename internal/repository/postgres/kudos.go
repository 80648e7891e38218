package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicles7/kudos-app/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertKudosQuery = `
INSERT INTO kudos(id, sender_id, receiver_id, type, message, created_at, image_data, image_mime)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	listKudosQuery = `
SELECT id, sender_id, receiver_id, type, message, created_at, image_data, image_mime
FROM kudos
ORDER BY seq`
)

// AppendKudos inserts a stamped ledger entry.
func (p *Postgres) AppendKudos(ctx context.Context, kudos entities.Kudos) (*entities.Kudos, error) {
	if kudos.ID == "" {
		return nil, fmt.Errorf("%w: kudos id is required", entities.ErrInvalidArgument)
	}
	if _, err := p.db.Exec(ctx, insertKudosQuery, kudosArgs(kudos)...); err != nil {
		p.log.Errorw("failed to insert kudos", "error", err, "kudos_id", kudos.ID)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entities.ErrKudosExists
			case "23503":
				return nil, entities.ErrUserNotFound
			}
		}
		return nil, fmt.Errorf("insert kudos: %w", err)
	}

	p.log.Debugw("kudos appended", "kudos_id", kudos.ID)
	res := kudos.Clone()
	return &res, nil
}

// ListKudos returns the whole ledger in insertion order.
func (p *Postgres) ListKudos(ctx context.Context) ([]entities.Kudos, error) {
	rows, err := p.db.Query(ctx, listKudosQuery)
	if err != nil {
		return nil, fmt.Errorf("list kudos: %w", err)
	}
	defer rows.Close()

	ledger := make([]entities.Kudos, 0)
	for rows.Next() {
		k, err := scanKudos(rows)
		if err != nil {
			p.log.Errorw("failed to scan kudos", "error", err)
			return nil, fmt.Errorf("scan kudos: %w", err)
		}
		ledger = append(ledger, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kudos: %w", err)
	}
	return ledger, nil
}

func kudosArgs(k entities.Kudos) []any {
	var data []byte
	var mime *string
	if k.Image != nil {
		data = k.Image.Data
		mime = &k.Image.MIMEType
	}
	return []any{k.ID, k.SenderID, k.ReceiverID, string(k.Type), k.Message, k.CreatedAt, data, mime}
}

func scanKudos(row pgx.Row) (entities.Kudos, error) {
	var k entities.Kudos
	var kt string
	var data []byte
	var mime *string
	if err := row.Scan(&k.ID, &k.SenderID, &k.ReceiverID, &kt, &k.Message, &k.CreatedAt, &data, &mime); err != nil {
		return entities.Kudos{}, err
	}
	k.Type = entities.KudosType(kt)
	if data != nil {
		k.Image = &entities.Image{Data: data}
		if mime != nil {
			k.Image.MIMEType = *mime
		}
	}
	return k, nil
}
