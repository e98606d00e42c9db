// Package devreload implements development-time hot reload. A filesystem
// watcher re-parses changed manifest files, rebuilds the affected components
// through the factory, and swaps them into the registry in place. Connected
// dashboards are notified over a websocket hub so they re-request the
// swapped component. None of this runs in production mode.
package devreload
