package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ActionLeaveCreate     = "leave.request.create"
	ActionLeaveApprove    = "leave.request.approve"
	ActionLeaveReject     = "leave.request.reject"
	ActionLeaveDelete     = "leave.request.delete"
	ActionPayrollCreate   = "payroll.record.create"
	ActionPayrollUpdate   = "payroll.record.update"
	ActionPayrollDelete   = "payroll.record.delete"
	ActionPayrollStatus   = "payroll.record.status"
	ActionPayslipGenerate = "payroll.payslip.generate"
)

type Event struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	RequestID  string          `json:"requestId"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Filter struct {
	Action     string
	EntityType string
}

type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

// Record appends one audit row. Callers treat it as best-effort; a failed
// write is logged and must not fail the mutating operation.
func (s *Service) Record(ctx context.Context, action, entityType, entityID, requestID string, details any) error {
	var detailsJSON []byte
	if details != nil {
		payload, err := json.Marshal(details)
		if err != nil {
			return err
		}
		detailsJSON = payload
	}

	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_events (action, entity_type, entity_id, details_json, request_id)
    VALUES ($1,$2,$3,$4,$5)
  `, action, entityType, entityID, detailsJSON, requestID)
	return err
}

// TryRecord wraps Record with the fire-and-forget policy.
func (s *Service) TryRecord(ctx context.Context, action, entityType, entityID, requestID string, details any) {
	if err := s.Record(ctx, action, entityType, entityID, requestID, details); err != nil {
		slog.Warn("audit record failed", "action", action, "entityId", entityID, "err", err)
	}
}

func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Event, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.Action != "" {
		where += fmt.Sprintf(" AND action = $%d", len(args)+1)
		args = append(args, filter.Action)
	}
	if filter.EntityType != "" {
		where += fmt.Sprintf(" AND entity_type = $%d", len(args)+1)
		args = append(args, filter.EntityType)
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM audit_events"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT id, action, entity_type, entity_id, request_id, details_json, created_at FROM audit_events" +
		where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var evt Event
		if err := rows.Scan(&evt.ID, &evt.Action, &evt.EntityType, &evt.EntityID, &evt.RequestID, &evt.Details, &evt.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, evt)
	}
	return out, total, rows.Err()
}
