package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	model "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// MockIssueWriterAdapter is a mock type for the IssueWriterAdapter type.
type MockIssueWriterAdapter struct {
	mock.Mock
}

// MockIssueWriterAdapter_Expecter records typed expectations.
type MockIssueWriterAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockIssueWriterAdapter) EXPECT() *MockIssueWriterAdapter_Expecter {
	return &MockIssueWriterAdapter_Expecter{mock: &_m.Mock}
}

// Write provides a mock function with given fields: ctx, issue.
func (_m *MockIssueWriterAdapter) Write(ctx context.Context, issue model.Issue) error {
	ret := _m.Called(ctx, issue)

	if rf, ok := ret.Get(0).(func(context.Context, model.Issue) error); ok {
		return rf(ctx, issue)
	}

	return ret.Error(0)
}

// Flush provides a mock function with given fields: ctx.
func (_m *MockIssueWriterAdapter) Flush(ctx context.Context) error {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		return rf(ctx)
	}

	return ret.Error(0)
}

// MockIssueWriterAdapter_Write_Call wraps the Write expectation.
type MockIssueWriterAdapter_Write_Call struct {
	*mock.Call
}

// Write is a helper method to define mock.On call.
func (_e *MockIssueWriterAdapter_Expecter) Write(ctx interface{}, issue interface{}) *MockIssueWriterAdapter_Write_Call {
	return &MockIssueWriterAdapter_Write_Call{Call: _e.mock.On("Write", ctx, issue)}
}

// Return sets the value returned by Write.
func (_c *MockIssueWriterAdapter_Write_Call) Return(err error) *MockIssueWriterAdapter_Write_Call {
	_c.Call.Return(err)
	return _c
}

// MockIssueWriterAdapter_Flush_Call wraps the Flush expectation.
type MockIssueWriterAdapter_Flush_Call struct {
	*mock.Call
}

// Flush is a helper method to define mock.On call.
func (_e *MockIssueWriterAdapter_Expecter) Flush(ctx interface{}) *MockIssueWriterAdapter_Flush_Call {
	return &MockIssueWriterAdapter_Flush_Call{Call: _e.mock.On("Flush", ctx)}
}

// Return sets the value returned by Flush.
func (_c *MockIssueWriterAdapter_Flush_Call) Return(err error) *MockIssueWriterAdapter_Flush_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockIssueWriterAdapter creates a new instance of MockIssueWriterAdapter.
// It also registers a cleanup function to assert the mocks expectations.
func NewMockIssueWriterAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIssueWriterAdapter {
	m := &MockIssueWriterAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
