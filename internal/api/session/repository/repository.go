package sessionRepository

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
		Sessions: &sessionRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Sessions interface {
		CreateSession(ctx context.Context, session entity.GameSession) error
		GetByID(ctx context.Context, id string) (entity.GameSession, error)
		GetByChildID(ctx context.Context, childID string) ([]entity.GameSession, error)
		GetCompletedByChildID(ctx context.Context, childID string) ([]entity.GameSession, error)
		UpdateResults(ctx context.Context, session entity.GameSession) error
		UpdateStatus(ctx context.Context, id string, status entity.SessionStatus) error
		UpdateVideoURL(ctx context.Context, id string, videoURL string) error
	}

	Commit   func() error
	Rollback func() error
}

type sessionRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
