package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/gen/ent/billingunit"
	"github.com/lucasveras/faturahub/gen/ent/importtask"
)

type TaskRepository interface {
	Start(ctx context.Context, unitID uuid.UUID, period time.Time) (*ent.ImportTask, error)
	MarkInProgress(ctx context.Context, taskID uuid.UUID) error
	Succeed(ctx context.Context, taskID uuid.UUID) error
	Fail(ctx context.Context, taskID uuid.UUID, message string) error
	GetByID(ctx context.Context, taskID uuid.UUID) (*ent.ImportTask, error)
	ListForUnit(ctx context.Context, unitID uuid.UUID, limit int) ([]*ent.ImportTask, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*ent.ImportTask, error)
}

type taskRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTaskRepository(entc *ent.Client, log *slog.Logger) TaskRepository {
	return &taskRepo{ent: entc, log: log}
}

func (r *taskRepo) Start(ctx context.Context, unitID uuid.UUID, period time.Time) (*ent.ImportTask, error) {
	task, err := r.ent.ImportTask.
		Create().
		SetUnitID(unitID).
		SetReferencePeriod(period).
		SetStatus(string(constants.TaskPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("import_task start failed", "unit_id", unitID, "err", err)
		return nil, err
	}
	r.log.Info("import_task started", "task_id", task.ID, "unit_id", unitID, "period", period)
	return task, nil
}

// transition moves a task forward. Statuses never move backwards and
// terminal statuses never change again.
func (r *taskRepo) transition(ctx context.Context, taskID uuid.UUID, next constants.TaskStatus, apply func(*ent.ImportTaskUpdateOne) *ent.ImportTaskUpdateOne) error {
	task, err := r.ent.ImportTask.Query().Where(importtask.ID(taskID)).Only(ctx)
	if err != nil {
		return err
	}
	cur := constants.TaskStatus(task.Status)
	if !constants.CanTransition(cur, next) {
		return fmt.Errorf("import task %s: illegal status transition %s -> %s", taskID, cur, next)
	}

	upd := r.ent.ImportTask.UpdateOneID(taskID).SetStatus(string(next))
	if apply != nil {
		upd = apply(upd)
	}
	_, err = upd.Save(ctx)
	return err
}

func (r *taskRepo) MarkInProgress(ctx context.Context, taskID uuid.UUID) error {
	err := r.transition(ctx, taskID, constants.TaskInProgress, nil)
	if err != nil {
		r.log.Error("import_task transition failed", "task_id", taskID, "err", err)
		return err
	}
	return nil
}

func (r *taskRepo) Succeed(ctx context.Context, taskID uuid.UUID) error {
	err := r.transition(ctx, taskID, constants.TaskSuccess, func(u *ent.ImportTaskUpdateOne) *ent.ImportTaskUpdateOne {
		return u.SetCompletedAt(time.Now())
	})
	if err != nil {
		r.log.Error("import_task finish(SUCCESS) failed", "task_id", taskID, "err", err)
		return err
	}
	r.log.Info("import_task finished (SUCCESS)", "task_id", taskID)
	return nil
}

func (r *taskRepo) Fail(ctx context.Context, taskID uuid.UUID, message string) error {
	err := r.transition(ctx, taskID, constants.TaskFailure, func(u *ent.ImportTaskUpdateOne) *ent.ImportTaskUpdateOne {
		return u.SetCompletedAt(time.Now()).SetErrorMessage(message)
	})
	if err != nil {
		r.log.Error("import_task finish(FAILURE) failed", "task_id", taskID, "err", err)
		return err
	}
	r.log.Warn("import_task finished (FAILURE)", "task_id", taskID, "error", message)
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, taskID uuid.UUID) (*ent.ImportTask, error) {
	return r.ent.ImportTask.Query().Where(importtask.ID(taskID)).Only(ctx)
}

func (r *taskRepo) ListForUnit(ctx context.Context, unitID uuid.UUID, limit int) ([]*ent.ImportTask, error) {
	q := r.ent.ImportTask.Query().
		Where(importtask.UnitID(unitID)).
		Order(importtask.ByCreatedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	tasks, err := q.All(ctx)
	if err != nil {
		r.log.Error("failed to list import tasks", "unit_id", unitID, "err", err)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) ListForCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*ent.ImportTask, error) {
	q := r.ent.ImportTask.Query().
		Where(importtask.HasUnitWith(billingunit.CustomerID(customerID))).
		Order(importtask.ByCreatedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	tasks, err := q.All(ctx)
	if err != nil {
		r.log.Error("failed to list import tasks", "customer_id", customerID, "err", err)
		return nil, err
	}
	return tasks, nil
}
