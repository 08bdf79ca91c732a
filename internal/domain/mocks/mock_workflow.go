package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/codeclimate-community/codeclimate-clippy/internal/domain"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// MockWorkflow_Expecter records typed expectations.
type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Analyze provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Analyze(ctx context.Context, args domain.AnalyzeArgs) error {
	ret := _m.Called(ctx, args)

	if rf, ok := ret.Get(0).(func(context.Context, domain.AnalyzeArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// MockWorkflow_Analyze_Call wraps the Analyze expectation.
type MockWorkflow_Analyze_Call struct {
	*mock.Call
}

// Analyze is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Analyze(ctx interface{}, args interface{}) *MockWorkflow_Analyze_Call {
	return &MockWorkflow_Analyze_Call{Call: _e.mock.On("Analyze", ctx, args)}
}

// Return sets the value returned by Analyze.
func (_c *MockWorkflow_Analyze_Call) Return(err error) *MockWorkflow_Analyze_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow.
// It also registers a cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
