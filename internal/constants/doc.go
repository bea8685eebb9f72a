// Package constants provides application-wide fixed values for gitpast:
// the branch and remote names, the ledger file name, directory naming and
// the terminal styling of the success banner.
//
//	import "github.com/bashhack/gitpast/internal/constants"
//
//	fmt.Println(constants.SuccessHighlight + "completed successfully" + constants.ResetStyle)
package constants
