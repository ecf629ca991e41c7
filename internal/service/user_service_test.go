package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	errs "stonks/internal/errors"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]bson.D, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.D), args.Error(1)
}

func (m *MockUserRepository) FindByUID(ctx context.Context, uid string) (bson.D, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.D), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, doc bson.D) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByUID(ctx context.Context, uid string) (bson.D, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.D), args.Error(1)
}

func TestUserService_UserExists(t *testing.T) {
	tests := []struct {
		name          string
		uid           string
		setupMock     func(*MockUserRepository)
		expected      bool
		expectedError error
	}{
		{
			name: "existing uid",
			uid:  "u1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUID", mock.Anything, "u1").Return(bson.D{{Key: "uid", Value: "u1"}}, nil)
			},
			expected: true,
		},
		{
			name: "missing uid",
			uid:  "nobody",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUID", mock.Anything, "nobody").Return(nil, errs.ErrUserNotFound)
			},
			expected: false,
		},
		{
			name: "repository failure",
			uid:  "u1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUID", mock.Anything, "u1").Return(nil, errors.New("connection reset"))
			},
			expected:      false,
			expectedError: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			exists, err := svc.UserExists(context.Background(), tt.uid)

			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, exists)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name          string
		uid           string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "existing uid",
			uid:  "u1",
			setupMock: func(m *MockUserRepository) {
				m.On("DeleteByUID", mock.Anything, "u1").Return(bson.D{{Key: "uid", Value: "u1"}}, nil)
			},
		},
		{
			name: "missing uid is not an error",
			uid:  "nobody",
			setupMock: func(m *MockUserRepository) {
				m.On("DeleteByUID", mock.Anything, "nobody").Return(nil, errs.ErrUserNotFound)
			},
		},
		{
			name: "repository failure",
			uid:  "u1",
			setupMock: func(m *MockUserRepository) {
				m.On("DeleteByUID", mock.Anything, "u1").Return(nil, errors.New("connection reset"))
			},
			expectedError: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			err := svc.DeleteUser(context.Background(), tt.uid)

			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	docs := []bson.D{
		{{Key: "uid", Value: "u1"}},
		{{Key: "uid", Value: "u2"}},
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return(docs, nil)

	svc := NewUserService(mockRepo)
	got, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, docs, got)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser(t *testing.T) {
	doc := bson.D{{Key: "uid", Value: "u1"}, {Key: "username", Value: "alice"}}

	mockRepo := new(MockUserRepository)
	mockRepo.On("Insert", mock.Anything, doc).Return(nil)

	svc := NewUserService(mockRepo)
	err := svc.CreateUser(context.Background(), doc)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
