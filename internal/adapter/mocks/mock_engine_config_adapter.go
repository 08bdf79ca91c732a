package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	model "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// MockEngineConfigAdapter is a mock type for the EngineConfigAdapter type.
type MockEngineConfigAdapter struct {
	mock.Mock
}

// MockEngineConfigAdapter_Expecter records typed expectations.
type MockEngineConfigAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockEngineConfigAdapter) EXPECT() *MockEngineConfigAdapter_Expecter {
	return &MockEngineConfigAdapter_Expecter{mock: &_m.Mock}
}

// Load provides a mock function with given fields: ctx.
func (_m *MockEngineConfigAdapter) Load(ctx context.Context) (model.EngineConfig, error) {
	ret := _m.Called(ctx)

	var r0 model.EngineConfig
	if rf, ok := ret.Get(0).(func(context.Context) model.EngineConfig); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(model.EngineConfig)
	}

	return r0, ret.Error(1)
}

// MockEngineConfigAdapter_Load_Call wraps the Load expectation.
type MockEngineConfigAdapter_Load_Call struct {
	*mock.Call
}

// Load is a helper method to define mock.On call.
func (_e *MockEngineConfigAdapter_Expecter) Load(ctx interface{}) *MockEngineConfigAdapter_Load_Call {
	return &MockEngineConfigAdapter_Load_Call{Call: _e.mock.On("Load", ctx)}
}

// Return sets the values returned by Load.
func (_c *MockEngineConfigAdapter_Load_Call) Return(cfg model.EngineConfig, err error) *MockEngineConfigAdapter_Load_Call {
	_c.Call.Return(cfg, err)
	return _c
}

// NewMockEngineConfigAdapter creates a new instance of MockEngineConfigAdapter.
// It also registers a cleanup function to assert the mocks expectations.
func NewMockEngineConfigAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEngineConfigAdapter {
	m := &MockEngineConfigAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
