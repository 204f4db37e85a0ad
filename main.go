// SPDX-License-Identifier: MPL-2.0

package main

import cmd "masklint/cmd/masklint"

func main() {
	cmd.Execute()
}
