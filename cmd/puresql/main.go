// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package main

import (
	"os"

	"github.com/terakoya76/puresql-sub000/cmd/puresql/internal/cmdapi"
)

func main() {
	if err := cmdapi.Execute(); err != nil {
		os.Exit(1)
	}
}
