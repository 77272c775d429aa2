package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// SymbolTable is a mock type for the SymbolTable type
type SymbolTable struct {
	mock.Mock
}

// Bind provides a mock function with given fields: alias, canonical
func (_m *SymbolTable) Bind(alias string, canonical string) error {
	ret := _m.Called(alias, canonical)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, string) error); ok {
		r0 = rf(alias, canonical)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Resolve provides a mock function with given fields: name
func (_m *SymbolTable) Resolve(name string) (string, bool) {
	ret := _m.Called(name)

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(name)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(string) bool); ok {
		r1 = rf(name)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

type mockConstructorTestingTNewSymbolTable interface {
	mock.TestingT
	Cleanup(func())
}

// NewSymbolTable creates a new instance of SymbolTable. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSymbolTable(t mockConstructorTestingTNewSymbolTable) *SymbolTable {
	mock := &SymbolTable{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
