// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	NotifyLoaded      Notice = "NotifyLoaded"
	NotifyUnloaded    Notice = "NotifyUnloaded"
	NotifyReset       Notice = "NotifyReset"
	NotifyPause       Notice = "NotifyPause"
	NotifyResume      Notice = "NotifyResume"
	NotifyScreenshot  Notice = "NotifyScreenshot"
	NotifyStateSaved  Notice = "NotifyStateSaved"
	NotifyStateLoaded Notice = "NotifyStateLoaded"

	// cheats have been found and applied for the loaded content
	NotifyCheatsApplied Notice = "NotifyCheatsApplied"

	// the fast-forward multiplier has changed
	NotifyFastForward Notice = "NotifyFastForward"
)

// Notify is used for direct communication between the session and the host.
// A host that is not interested in notifications does not need to provide an
// implementation.
type Notify interface {
	Notify(notice Notice) error
}
