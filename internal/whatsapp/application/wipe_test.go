package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/porticohq/portico/internal/shared/infrastructure/eventbus"
	"github.com/porticohq/portico/internal/whatsapp/domain"
)

// MockProfileRepository is a mock implementation of domain.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByCompany(ctx context.Context, companyID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// MockErrorLogRepository is a mock implementation of domain.ErrorLogRepository.
type MockErrorLogRepository struct {
	mock.Mock
}

func (m *MockErrorLogRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]*domain.ErrorLog, error) {
	args := m.Called(ctx, companyID, limit)
	logs, _ := args.Get(0).([]*domain.ErrorLog)
	return logs, args.Error(1)
}

func (m *MockErrorLogRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) error {
	args := m.Called(ctx, companyID)
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

// memoryJournal is an in-memory wipe journal for tests.
type memoryJournal struct {
	completed map[string]bool
}

func newMemoryJournal() *memoryJournal {
	return &memoryJournal{completed: make(map[string]bool)}
}

func (j *memoryJournal) key(companyID uuid.UUID, step string) string {
	return companyID.String() + "/" + step
}

func (j *memoryJournal) IsCompleted(_ context.Context, companyID uuid.UUID, step string) (bool, error) {
	return j.completed[j.key(companyID, step)], nil
}

func (j *memoryJournal) MarkCompleted(_ context.Context, companyID uuid.UUID, step string) error {
	j.completed[j.key(companyID, step)] = true
	return nil
}

func (j *memoryJournal) Clear(_ context.Context, companyID uuid.UUID) error {
	for key := range j.completed {
		delete(j.completed, key)
	}
	return nil
}

type wipeFixture struct {
	sessions  *MockSessionRepository
	messages  *MockMessageRepository
	profiles  *MockProfileRepository
	errorLogs *MockErrorLogRepository
	journal   *memoryJournal
	publisher *MockPublisher
	wiper     *Wiper
}

func newWipeFixture() *wipeFixture {
	f := &wipeFixture{
		sessions:  new(MockSessionRepository),
		messages:  new(MockMessageRepository),
		profiles:  new(MockProfileRepository),
		errorLogs: new(MockErrorLogRepository),
		journal:   newMemoryJournal(),
		publisher: new(MockPublisher),
	}
	f.wiper = NewWiper(f.sessions, f.messages, f.profiles, f.errorLogs, f.journal, f.publisher, testLogger())
	return f
}

func TestWiper_Wipe_RunsStepsInOrder(t *testing.T) {
	f := newWipeFixture()
	companyID := uuid.New()

	var order []string
	f.messages.On("DeleteByCompany", mock.Anything, companyID).Run(func(mock.Arguments) {
		order = append(order, StepMessages)
	}).Return(nil)
	f.sessions.On("DeleteByCompany", mock.Anything, companyID).Run(func(mock.Arguments) {
		order = append(order, StepSessions)
	}).Return(nil)
	f.profiles.On("DeleteByCompany", mock.Anything, companyID).Run(func(mock.Arguments) {
		order = append(order, StepProfiles)
	}).Return(nil)
	f.errorLogs.On("DeleteByCompany", mock.Anything, companyID).Run(func(mock.Arguments) {
		order = append(order, StepErrorLogs)
	}).Return(nil)
	f.publisher.On("Publish", mock.Anything, eventbus.RoutingKeyWipeCompleted, mock.Anything).Return(nil)

	err := f.wiper.Wipe(context.Background(), companyID)

	require.NoError(t, err)
	assert.Equal(t, []string{StepMessages, StepSessions, StepProfiles, StepErrorLogs}, order)
	f.publisher.AssertExpectations(t)
}

func TestWiper_Wipe_StopsAtFirstFailure(t *testing.T) {
	f := newWipeFixture()
	companyID := uuid.New()

	f.messages.On("DeleteByCompany", mock.Anything, companyID).Return(nil)
	f.sessions.On("DeleteByCompany", mock.Anything, companyID).Return(errors.New("locked"))

	err := f.wiper.Wipe(context.Background(), companyID)

	assert.ErrorIs(t, err, ErrPartialWipe)
	f.profiles.AssertNotCalled(t, "DeleteByCompany", mock.Anything, mock.Anything)
	f.errorLogs.AssertNotCalled(t, "DeleteByCompany", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestWiper_Wipe_ResumeSkipsCompletedSteps(t *testing.T) {
	f := newWipeFixture()
	companyID := uuid.New()

	f.messages.On("DeleteByCompany", mock.Anything, companyID).Return(nil).Once()
	f.sessions.On("DeleteByCompany", mock.Anything, companyID).Return(errors.New("locked")).Once()

	err := f.wiper.Wipe(context.Background(), companyID)
	require.ErrorIs(t, err, ErrPartialWipe)

	// Second attempt resumes at sessions; messages are not deleted again.
	f.sessions.On("DeleteByCompany", mock.Anything, companyID).Return(nil).Once()
	f.profiles.On("DeleteByCompany", mock.Anything, companyID).Return(nil)
	f.errorLogs.On("DeleteByCompany", mock.Anything, companyID).Return(nil)
	f.publisher.On("Publish", mock.Anything, eventbus.RoutingKeyWipeCompleted, mock.Anything).Return(nil)

	err = f.wiper.Wipe(context.Background(), companyID)

	require.NoError(t, err)
	f.messages.AssertNumberOfCalls(t, "DeleteByCompany", 1)
	f.sessions.AssertNumberOfCalls(t, "DeleteByCompany", 2)
}

func TestWiper_Wipe_RequiresCompanyID(t *testing.T) {
	f := newWipeFixture()

	err := f.wiper.Wipe(context.Background(), uuid.Nil)
	assert.Error(t, err)
}
