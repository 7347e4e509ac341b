// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/sprocketschain/sprocketschain/cmd/sprockets-chain"

func main() {
	cmd.Execute()
}
