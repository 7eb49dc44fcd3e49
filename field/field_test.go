// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terakoya76/puresql-sub000/field"
)

func TestEqual(t *testing.T) {
	require.True(t, field.NewI64(1).Equal(field.NewI64(1)))
	require.False(t, field.NewI64(1).Equal(field.NewI64(2)))
	require.False(t, field.NewI64(1).Equal(field.NewU64(1)))
	require.False(t, field.NewInit().Equal(field.NewInit().Add(field.NewI64(0))))
}

func TestCompareCrossKindUndefined(t *testing.T) {
	_, ok := field.NewI64(1).Compare(field.NewStr("1"))
	require.False(t, ok)

	cmp, ok := field.NewI64(1).Compare(field.NewI64(2))
	require.True(t, ok)
	require.Equal(t, -1, cmp)
}

func TestLessGreaterCrossKindIsFalse(t *testing.T) {
	require.False(t, field.NewI64(1).Less(field.NewStr("2")))
	require.False(t, field.NewI64(1).Greater(field.NewStr("0")))
}

func TestAddInitIdentity(t *testing.T) {
	f := field.NewI64(42)
	require.True(t, field.NewInit().Add(f).Equal(f))
	require.True(t, f.Add(field.NewInit()).Equal(f))
}

func TestAddSameKind(t *testing.T) {
	require.True(t, field.NewI64(2).Add(field.NewI64(3)).Equal(field.NewI64(5)))
	require.True(t, field.NewU64(2).Add(field.NewU64(3)).Equal(field.NewU64(5)))
	require.True(t, field.NewF64(1.5).Add(field.NewF64(2.5)).Equal(field.NewF64(4)))
}

func TestAddMismatchedKindFallsThroughToLeft(t *testing.T) {
	left := field.NewI64(7)
	require.True(t, left.Add(field.NewStr("x")).Equal(left))
}

func TestDivInitIsInit(t *testing.T) {
	require.Equal(t, field.Init, field.NewInit().Div(field.NewI64(3)).Kind())
}

func TestDivSameKind(t *testing.T) {
	require.True(t, field.NewI64(9).Div(field.NewI64(2)).Equal(field.NewI64(4)))
	require.True(t, field.NewF64(9).Div(field.NewF64(2)).Equal(field.NewF64(4.5)))
}

func TestSameKindFrom(t *testing.T) {
	require.True(t, field.NewI64(0).SameKindFrom(3).Equal(field.NewI64(3)))
	require.True(t, field.NewF64(0).SameKindFrom(3).Equal(field.NewF64(3)))
	require.Equal(t, field.Init, field.NewStr("x").SameKindFrom(3).Kind())
	require.Equal(t, field.Init, field.NewInit().SameKindFrom(3).Kind())
}

func TestString(t *testing.T) {
	require.Equal(t, "300", field.NewI64(300).String())
	require.Equal(t, "apple", field.NewStr("apple").String())
	require.Equal(t, "", field.NewInit().String())
}
