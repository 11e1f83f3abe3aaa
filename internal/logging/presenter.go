// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import "fmt"

// PresentError formats an error for terminal display: the failing action, a
// colon, and the masked error text. Driver and service errors can quote
// connection strings verbatim, so the message always goes through Mask.
func PresentError(action string, err error) string {
	if err == nil {
		return ""
	}
	if action == "" {
		return Mask(err.Error())
	}
	return fmt.Sprintf("%s: %s", action, Mask(err.Error()))
}
