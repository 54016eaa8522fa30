package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/porticohq/portico/internal/consent/domain"
	"github.com/porticohq/portico/internal/shared/infrastructure/eventbus"
)

// MockConsentRepository is a mock implementation of domain.ConsentRepository.
type MockConsentRepository struct {
	mock.Mock
}

func (m *MockConsentRepository) Get(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string) (*domain.ConsentRecord, error) {
	args := m.Called(ctx, userID, serviceTag, docVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsentRecord), args.Error(1)
}

func (m *MockConsentRepository) Save(ctx context.Context, record *domain.ConsentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockProgressStore is a mock implementation of domain.ProgressStore.
type MockProgressStore struct {
	mock.Mock
}

func (m *MockProgressStore) Get(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string) (domain.ReadProgress, error) {
	args := m.Called(ctx, userID, serviceTag, docVersion)
	return args.Get(0).(domain.ReadProgress), args.Error(1)
}

func (m *MockProgressStore) Save(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string, progress domain.ReadProgress) error {
	args := m.Called(ctx, userID, serviceTag, docVersion, progress)
	return args.Error(0)
}

// MockPublisher is a mock implementation of eventbus.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fullyRead() domain.ReadProgress {
	return domain.ReadProgress{Offset: 900, Viewport: 100, ContentHeight: 1000}
}

func TestGatekeeper_Check_GrantedWhenRecordExists(t *testing.T) {
	records := new(MockConsentRepository)
	gk := NewGatekeeper(records, new(MockProgressStore), new(MockPublisher), testLogger())

	userID := uuid.New()
	records.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(&domain.ConsentRecord{
		UserID: userID, ServiceTag: "whatsapp", DocVersion: "v2", GrantedAt: time.Now(),
	}, nil)

	state, err := gk.Check(context.Background(), userID, "whatsapp", "v2")

	require.NoError(t, err)
	assert.Equal(t, domain.GateGranted, state)
}

func TestGatekeeper_Check_NotGrantedWithoutRecord(t *testing.T) {
	records := new(MockConsentRepository)
	gk := NewGatekeeper(records, new(MockProgressStore), new(MockPublisher), testLogger())

	userID := uuid.New()
	records.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(nil, domain.ErrNotGranted)

	state, err := gk.Check(context.Background(), userID, "whatsapp", "v2")

	require.NoError(t, err)
	assert.Equal(t, domain.GateNotGranted, state)
}

func TestGatekeeper_Check_LookupFailureNeverUnlocks(t *testing.T) {
	records := new(MockConsentRepository)
	gk := NewGatekeeper(records, new(MockProgressStore), new(MockPublisher), testLogger())

	userID := uuid.New()
	records.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(nil, errors.New("timeout"))

	state, err := gk.Check(context.Background(), userID, "whatsapp", "v2")

	assert.Error(t, err)
	assert.Equal(t, domain.GateNotGranted, state)
}

func TestGatekeeper_GrantedIsSticky(t *testing.T) {
	records := new(MockConsentRepository)
	gk := NewGatekeeper(records, new(MockProgressStore), new(MockPublisher), testLogger())

	userID := uuid.New()
	records.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(&domain.ConsentRecord{
		UserID: userID, ServiceTag: "whatsapp", DocVersion: "v2",
	}, nil).Once()

	state, err := gk.Check(context.Background(), userID, "whatsapp", "v2")
	require.NoError(t, err)
	require.Equal(t, domain.GateGranted, state)

	// Subsequent checks do not hit the platform and cannot regress.
	state, err = gk.Check(context.Background(), userID, "whatsapp", "v2")
	require.NoError(t, err)
	assert.Equal(t, domain.GateGranted, state)
	records.AssertNumberOfCalls(t, "Get", 1)
}

func TestGatekeeper_Accept_RequiresCompleteRead(t *testing.T) {
	records := new(MockConsentRepository)
	progress := new(MockProgressStore)
	gk := NewGatekeeper(records, progress, new(MockPublisher), testLogger())

	userID := uuid.New()
	progress.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(domain.ReadProgress{
		Offset: 100, Viewport: 100, ContentHeight: 1000,
	}, nil)

	err := gk.Accept(context.Background(), userID, uuid.New(), "whatsapp", "v2")

	assert.ErrorIs(t, err, ErrDisclosureNotRead)
	records.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGatekeeper_Accept_GrantsAfterConfirmedWrite(t *testing.T) {
	records := new(MockConsentRepository)
	progress := new(MockProgressStore)
	publisher := new(MockPublisher)
	gk := NewGatekeeper(records, progress, publisher, testLogger())

	userID := uuid.New()
	companyID := uuid.New()
	progress.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(fullyRead(), nil)
	records.On("Save", mock.Anything, mock.MatchedBy(func(r *domain.ConsentRecord) bool {
		return r.UserID == userID && r.CompanyID == companyID && r.DocVersion == "v2"
	})).Return(nil)
	publisher.On("Publish", mock.Anything, eventbus.RoutingKeyConsentGranted, mock.Anything).Return(nil)

	err := gk.Accept(context.Background(), userID, companyID, "whatsapp", "v2")

	require.NoError(t, err)
	state, err := gk.Check(context.Background(), userID, "whatsapp", "v2")
	require.NoError(t, err)
	assert.Equal(t, domain.GateGranted, state)
}

func TestGatekeeper_Accept_WriteFailureStaysNotGranted(t *testing.T) {
	records := new(MockConsentRepository)
	progress := new(MockProgressStore)
	gk := NewGatekeeper(records, progress, new(MockPublisher), testLogger())

	userID := uuid.New()
	progress.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(fullyRead(), nil)
	records.On("Save", mock.Anything, mock.Anything).Return(errors.New("write failed"))
	records.On("Get", mock.Anything, userID, "whatsapp", "v2").Return(nil, domain.ErrNotGranted)

	err := gk.Accept(context.Background(), userID, uuid.New(), "whatsapp", "v2")

	assert.Error(t, err)
	state, err := gk.Check(context.Background(), userID, "whatsapp", "v2")
	require.NoError(t, err)
	assert.Equal(t, domain.GateNotGranted, state)
}

func TestReadProgress_Complete(t *testing.T) {
	assert.True(t, domain.ReadProgress{Offset: 900, Viewport: 100, ContentHeight: 1000}.Complete(0))
	assert.True(t, domain.ReadProgress{Offset: 880, Viewport: 100, ContentHeight: 1000}.Complete(24))
	assert.False(t, domain.ReadProgress{Offset: 500, Viewport: 100, ContentHeight: 1000}.Complete(24))
	// Documents shorter than the viewport are read on sight.
	assert.True(t, domain.ReadProgress{Offset: 0, Viewport: 800, ContentHeight: 300}.Complete(0))
	// Unmeasured content is never complete.
	assert.False(t, domain.ReadProgress{}.Complete(24))
}
