package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockLinterRunnerAdapter is a mock type for the LinterRunnerAdapter type.
type MockLinterRunnerAdapter struct {
	mock.Mock
}

// MockLinterRunnerAdapter_Expecter records typed expectations.
type MockLinterRunnerAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockLinterRunnerAdapter) EXPECT() *MockLinterRunnerAdapter_Expecter {
	return &MockLinterRunnerAdapter_Expecter{mock: &_m.Mock}
}

// Stream provides a mock function with given fields: ctx.
func (_m *MockLinterRunnerAdapter) Stream(ctx context.Context) (io.ReadCloser, error) {
	ret := _m.Called(ctx)

	var r0 io.ReadCloser
	if rf, ok := ret.Get(0).(func(context.Context) io.ReadCloser); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(io.ReadCloser)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLinterRunnerAdapter_Stream_Call wraps the Stream expectation.
type MockLinterRunnerAdapter_Stream_Call struct {
	*mock.Call
}

// Stream is a helper method to define mock.On call.
func (_e *MockLinterRunnerAdapter_Expecter) Stream(ctx interface{}) *MockLinterRunnerAdapter_Stream_Call {
	return &MockLinterRunnerAdapter_Stream_Call{Call: _e.mock.On("Stream", ctx)}
}

// Run registers a function called with the arguments of Stream.
func (_c *MockLinterRunnerAdapter_Stream_Call) Run(run func(ctx context.Context)) *MockLinterRunnerAdapter_Stream_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

// Return sets the values returned by Stream.
func (_c *MockLinterRunnerAdapter_Stream_Call) Return(output io.ReadCloser, err error) *MockLinterRunnerAdapter_Stream_Call {
	_c.Call.Return(output, err)
	return _c
}

// NewMockLinterRunnerAdapter creates a new instance of MockLinterRunnerAdapter.
// It also registers a cleanup function to assert the mocks expectations.
func NewMockLinterRunnerAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinterRunnerAdapter {
	m := &MockLinterRunnerAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
