package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/porticohq/portico/internal/identity/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMembershipRepository is a mock implementation of domain.MembershipRepository.
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func TestResolveCompanyHandler_Handle_Success(t *testing.T) {
	mockRepo := new(MockMembershipRepository)
	handler := NewResolveCompanyHandler(mockRepo)

	userID := uuid.New()
	companyID := uuid.New()
	mockRepo.On("GetByUserID", mock.Anything, userID).Return(&domain.Membership{
		UserID:    userID,
		CompanyID: companyID,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}, nil)

	result, err := handler.Handle(context.Background(), ResolveCompanyQuery{UserID: userID})

	require.NoError(t, err)
	assert.True(t, result.HasCompany)
	assert.Equal(t, companyID, result.CompanyID)
	assert.Equal(t, domain.RoleAdmin, result.Role)
	mockRepo.AssertExpectations(t)
}

func TestResolveCompanyHandler_Handle_NoCompanyIsNotAnError(t *testing.T) {
	mockRepo := new(MockMembershipRepository)
	handler := NewResolveCompanyHandler(mockRepo)

	userID := uuid.New()
	mockRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domain.ErrNoCompany)

	result, err := handler.Handle(context.Background(), ResolveCompanyQuery{UserID: userID})

	require.NoError(t, err)
	assert.False(t, result.HasCompany)
	assert.Equal(t, uuid.Nil, result.CompanyID)
}

func TestResolveCompanyHandler_Handle_BackendFailurePropagates(t *testing.T) {
	mockRepo := new(MockMembershipRepository)
	handler := NewResolveCompanyHandler(mockRepo)

	userID := uuid.New()
	mockRepo.On("GetByUserID", mock.Anything, userID).Return(nil, errors.New("connection reset"))

	result, err := handler.Handle(context.Background(), ResolveCompanyQuery{UserID: userID})

	// Data temporarily unavailable must not be confused with "no company".
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestResolveCompanyHandler_Handle_RequiresUserID(t *testing.T) {
	handler := NewResolveCompanyHandler(new(MockMembershipRepository))

	_, err := handler.Handle(context.Background(), ResolveCompanyQuery{})
	assert.Error(t, err)
}

func TestRole_CanViewInvoices(t *testing.T) {
	assert.True(t, domain.RoleAdmin.CanViewInvoices())
	assert.False(t, domain.RoleMember.CanViewInvoices())
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.False(t, domain.Role("owner").IsValid())
}
