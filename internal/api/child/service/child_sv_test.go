package childService

import (
	"context"
	"errors"
	"testing"

	"LittleSteps/internal/api/child"
	childRepository "LittleSteps/internal/api/child/repository"
	"LittleSteps/pkg/utils"
	"github.com/sirupsen/logrus"
)

type stubChildRepository struct{}

func (stubChildRepository) NewClient(tx bool) (childRepository.Client, error) {
	return childRepository.Client{}, nil
}

func TestCreateChildBirthDateValidation(t *testing.T) {
	t.Parallel()

	svc := New(logrus.New(), stubChildRepository{}, nil, utils.New())

	t.Run("malformed date is rejected as invalid", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Child().CreateChild(context.Background(), "parent-1", child.CreateChildRequest{
			Name:      "Mia",
			BirthDate: "31-12-2020",
			Sex:       "female",
		})
		if !errors.Is(err, child.ErrInvalidBirthDate) {
			t.Fatalf("CreateChild() error = %v, want ErrInvalidBirthDate", err)
		}
	})

	t.Run("future date keeps its own error", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Child().CreateChild(context.Background(), "parent-1", child.CreateChildRequest{
			Name:      "Mia",
			BirthDate: "2999-01-01",
			Sex:       "female",
		})
		if !errors.Is(err, child.ErrBirthDateInFuture) {
			t.Fatalf("CreateChild() error = %v, want ErrBirthDateInFuture", err)
		}
	})
}
