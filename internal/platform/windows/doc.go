// Package windows provides the Windows platform backend. Window
// enumeration goes through user32 EnumWindows, cloak detection through
// dwmapi, and pixel capture through PrintWindow plus a GDI DIB readback.
// On other platforms the package compiles as a no-op stub.
package windows
