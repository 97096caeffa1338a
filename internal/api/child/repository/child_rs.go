package childRepository

import (
	"LittleSteps/internal/api/child"
	"LittleSteps/internal/entity"
	contextPkg "LittleSteps/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type ChildDB struct {
	ID               sql.NullString `db:"id"`
	ParentID         sql.NullString `db:"parent_id"`
	Name             sql.NullString `db:"name"`
	BirthDate        sql.NullTime   `db:"birth_date"`
	Sex              sql.NullString `db:"sex"`
	JaundiceAtBirth  bool           `db:"jaundice_at_birth"`
	FamilyASDHistory bool           `db:"family_asd_history"`
	PhotoURL         sql.NullString `db:"photo_url"`
	CreatedAt        sql.NullTime   `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}

func (r *childRepository) CreateChild(c context.Context, ch entity.Child) error {
	requestID := contextPkg.GetRequestID(c)
	now := time.Now()
	argsKV := map[string]interface{}{
		"id":                 ch.ID,
		"parent_id":          ch.ParentID,
		"name":               ch.Name,
		"birth_date":         ch.BirthDate,
		"sex":                ch.Sex,
		"jaundice_at_birth":  ch.JaundiceAtBirth,
		"family_asd_history": ch.FamilyASDHistory,
		"created_at":         now,
		"updated_at":         now,
	}

	query, args, err := sqlx.Named(queryCreateChild, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateChild")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating child")
		return err
	}

	return nil
}

func (r *childRepository) GetByID(c context.Context, id string) (entity.Child, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ChildDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetChildByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Child{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Child{}, child.ErrChildNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Child{}, err
	}

	return r.makeChild(row), nil
}

func (r *childRepository) GetByParentID(c context.Context, parentID string) ([]entity.Child, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ChildDB

	argsKV := map[string]interface{}{
		"parent_id": parentID,
	}

	query, args, err := sqlx.Named(queryGetChildrenByParentID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByParentID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(c, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByParentID execution err")
		return nil, err
	}

	children := make([]entity.Child, 0, len(rows))
	for _, row := range rows {
		children = append(children, r.makeChild(row))
	}

	return children, nil
}

func (r *childRepository) UpdateChild(c context.Context, ch entity.Child) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                 ch.ID,
		"name":               ch.Name,
		"birth_date":         ch.BirthDate,
		"sex":                ch.Sex,
		"jaundice_at_birth":  ch.JaundiceAtBirth,
		"family_asd_history": ch.FamilyASDHistory,
		"updated_at":         time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateChild, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateChild named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateChild execution err")
		return err
	}

	return nil
}

func (r *childRepository) UpdatePhoto(c context.Context, id string, photoURL string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"photo_url":  photoURL,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateChildPhoto, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePhoto named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePhoto execution err")
		return err
	}

	return nil
}

func (r *childRepository) DeleteChild(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteChild, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteChild named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteChild execution err")
		return err
	}

	return nil
}

func (r *childRepository) makeChild(row ChildDB) entity.Child {
	return entity.Child{
		ID:               row.ID.String,
		ParentID:         row.ParentID.String,
		Name:             row.Name.String,
		BirthDate:        row.BirthDate.Time,
		Sex:              entity.Sex(row.Sex.String),
		JaundiceAtBirth:  row.JaundiceAtBirth,
		FamilyASDHistory: row.FamilyASDHistory,
		PhotoURL:         row.PhotoURL,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
