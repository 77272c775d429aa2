package mocks

import (
	host "github.com/stackb/statical/pkg/host"
	mock "github.com/stretchr/testify/mock"
)

// HookStack is a mock type for the HookStack type
type HookStack struct {
	mock.Mock
}

// Append provides a mock function with given fields: hook
func (_m *HookStack) Append(hook host.Hook) {
	_m.Called(hook)
}

// Hooks provides a mock function with given fields:
func (_m *HookStack) Hooks() []host.Hook {
	ret := _m.Called()

	var r0 []host.Hook
	if rf, ok := ret.Get(0).(func() []host.Hook); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]host.Hook)
	}

	return r0
}

// IndexOf provides a mock function with given fields: hook
func (_m *HookStack) IndexOf(hook host.Hook) int {
	ret := _m.Called(hook)

	var r0 int
	if rf, ok := ret.Get(0).(func(host.Hook) int); ok {
		r0 = rf(hook)
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0
}

// Remove provides a mock function with given fields: hook
func (_m *HookStack) Remove(hook host.Hook) bool {
	ret := _m.Called(hook)

	var r0 bool
	if rf, ok := ret.Get(0).(func(host.Hook) bool); ok {
		r0 = rf(hook)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

type mockConstructorTestingTNewHookStack interface {
	mock.TestingT
	Cleanup(func())
}

// NewHookStack creates a new instance of HookStack. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHookStack(t mockConstructorTestingTNewHookStack) *HookStack {
	mock := &HookStack{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
