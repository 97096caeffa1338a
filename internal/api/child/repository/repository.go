package childRepository

import (
	"LittleSteps/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Children: &childRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Children interface {
		CreateChild(ctx context.Context, child entity.Child) error
		GetByID(ctx context.Context, id string) (entity.Child, error)
		GetByParentID(ctx context.Context, parentID string) ([]entity.Child, error)
		UpdateChild(ctx context.Context, child entity.Child) error
		UpdatePhoto(ctx context.Context, id string, photoURL string) error
		DeleteChild(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type childRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
