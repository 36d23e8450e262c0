package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	"github.com/uberdeluxe/passenger-service/services/passengers"
	"github.com/uberdeluxe/passenger-service/services/passengers/mocks"
)

func storedPassenger(id int64, firstName string) *models.Passenger {
	created := time.Date(2023, 3, 14, 9, 26, 53, 0, time.UTC)
	return &models.Passenger{
		ID: id,
		UserDetails: models.AppUser{
			FirstName: firstName,
			LastName:  "Hopper",
			Email:     "grace@example.com",
			Password:  "$2a$10$abcdefghijklmnopqrstuv",
			Phone:     "+2348012345678",
			Roles:     models.Roles{models.RolePassenger},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

func TestUpdatePassenger_ReplaceFirstName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	patch := json.RawMessage(`[{"op":"replace","path":"/userDetails/firstName","value":"Ada"}]`)

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Passenger) (*models.Passenger, error) {
			assert.Equal(t, int64(7), p.ID)
			assert.Equal(t, "Ada", p.UserDetails.FirstName)
			assert.Equal(t, "Hopper", p.UserDetails.LastName)
			return p, nil
		})

	updated, err := uc.UpdatePassenger(context.Background(), 7, patch)

	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, "Ada", updated.UserDetails.FirstName)
}

func TestUpdatePassenger_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(404)).Return(nil, passengers.ErrPassengerNotFound)

	_, err := uc.UpdatePassenger(context.Background(), 404, json.RawMessage(`[]`))

	assert.ErrorIs(t, err, passengers.ErrPassengerNotFound)
}

func TestUpdatePassenger_MalformedDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdatePassenger(context.Background(), 7, json.RawMessage(`{"not":"a patch"}`))

	assert.ErrorIs(t, err, passengers.ErrPatchApply)
}

func TestUpdatePassenger_MissingPathAbortsWithoutSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	// The first operation would apply; the second targets a path that does
	// not exist, so the whole document is rejected and nothing is saved.
	patch := json.RawMessage(`[
		{"op":"replace","path":"/userDetails/firstName","value":"Ada"},
		{"op":"remove","path":"/userDetails/middleName"}
	]`)

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdatePassenger(context.Background(), 7, patch)

	assert.ErrorIs(t, err, passengers.ErrPatchApply)
}

func TestUpdatePassenger_FailedTestOpAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	patch := json.RawMessage(`[
		{"op":"test","path":"/userDetails/firstName","value":"Margaret"},
		{"op":"replace","path":"/userDetails/firstName","value":"Ada"}
	]`)

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdatePassenger(context.Background(), 7, patch)

	assert.ErrorIs(t, err, passengers.ErrPatchApply)
}

func TestUpdatePassenger_TypeIncompatibleValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	patch := json.RawMessage(`[{"op":"replace","path":"/userDetails/firstName","value":12345}]`)

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdatePassenger(context.Background(), 7, patch)

	assert.ErrorIs(t, err, passengers.ErrInvalidPatchedRecord)
}

func TestUpdatePassenger_InvalidRoleValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	patch := json.RawMessage(`[{"op":"replace","path":"/userDetails/roles","value":["PILOT"]}]`)

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdatePassenger(context.Background(), 7, patch)

	assert.ErrorIs(t, err, passengers.ErrInvalidPatchedRecord)
}

func TestUpdatePassenger_IdentifierIsImmutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	patch := json.RawMessage(`[{"op":"replace","path":"/id","value":99}]`)

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdatePassenger(context.Background(), 7, patch)

	assert.ErrorIs(t, err, passengers.ErrInvalidPatchedRecord)
}

func TestUpdatePassenger_StorageFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassengerRepo(ctrl)
	mockGW := mocks.NewMockPassengerGW(ctrl)
	uc := NewPassengerUC(mockRepo, mockGW, testConfig())

	patch := json.RawMessage(`[{"op":"replace","path":"/userDetails/firstName","value":"Ada"}]`)

	mockRepo.EXPECT().GetPassengerByID(gomock.Any(), int64(7)).Return(storedPassenger(7, "Grace"), nil)
	mockRepo.EXPECT().UpdatePassenger(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := uc.UpdatePassenger(context.Background(), 7, patch)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save patched passenger")
}
