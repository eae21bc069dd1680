//go:build windows

package windows

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/kbinani/screenshot"
	"github.com/lxn/win"

	"github.com/winsnap/winsnap/internal/model"
	"github.com/winsnap/winsnap/internal/platform"
)

var (
	procPrintWindow = user32.NewProc("PrintWindow")
	procIsWindow    = user32.NewProc("IsWindow")
)

// isWindow reports whether hwnd still refers to an existing window.
// lxn/win does not wrap user32 IsWindow, so the call goes direct.
func isWindow(hwnd win.HWND) bool {
	ret, _, _ := procIsWindow.Call(uintptr(hwnd))
	return ret != 0
}

// PrintWindow flags. PW_RENDERFULLCONTENT (Windows 8.1+) asks DWM for
// the composed surface, which covers DirectX-backed windows that the
// plain GDI path renders black.
const (
	pwClientOnly        = 0x00000001
	pwRenderFullContent = 0x00000002
)

// Capturer grabs window content from the window itself, so overlapping
// windows and off-screen position do not corrupt the result.
type Capturer struct{}

func NewCapturer() *Capturer { return &Capturer{} }

// CaptureWindow captures w's current content. The handle is re-checked
// and the rectangle re-read first: the catalog snapshot may be stale by
// the time capture runs, and the pixels must match where the window is
// now, not where it was at enumeration. The returned bounds are the
// fresh rectangle.
func (c *Capturer) CaptureWindow(w model.Window, opts platform.CaptureOptions) (*model.Capture, error) {
	EnableDPIAwareness()
	hwnd := win.HWND(w.Handle)
	if !isWindow(hwnd) {
		return nil, &platform.CaptureError{Reason: "window no longer exists"}
	}
	if !win.IsWindowVisible(hwnd) {
		return nil, &platform.CaptureError{Reason: "window is no longer visible"}
	}
	if win.IsIconic(hwnd) {
		return nil, &platform.CaptureError{Reason: "window is minimized"}
	}
	var rect win.RECT
	if !win.GetWindowRect(hwnd, &rect) {
		return nil, &platform.CaptureError{Reason: "reading window rectangle"}
	}
	width := int(rect.Right - rect.Left)
	height := int(rect.Bottom - rect.Top)
	if width <= 0 || height <= 0 {
		return nil, &platform.CaptureError{Reason: fmt.Sprintf("degenerate window rectangle %dx%d", width, height)}
	}

	var (
		img *image.RGBA
		err error
	)
	switch opts.Method {
	case platform.MethodScreen:
		img, err = screenshot.CaptureRect(image.Rect(int(rect.Left), int(rect.Top), int(rect.Right), int(rect.Bottom)))
		if err != nil {
			return nil, &platform.CaptureError{Reason: "screen region grab", Err: err}
		}
	default:
		img, err = renderWindow(hwnd, width, height)
		if err != nil {
			return nil, err
		}
	}

	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		return nil, &platform.CaptureError{Reason: fmt.Sprintf(
			"captured %dx%d for a %dx%d window", img.Bounds().Dx(), img.Bounds().Dy(), width, height)}
	}

	return &model.Capture{
		Image:  img,
		Bounds: [4]int{int(rect.Left), int(rect.Top), int(rect.Right), int(rect.Bottom)},
	}, nil
}

// renderWindow asks the window to draw itself into a memory bitmap and
// reads the pixels back as RGBA.
func renderWindow(hwnd win.HWND, width, height int) (*image.RGBA, error) {
	hdc := win.GetDC(hwnd)
	if hdc == 0 {
		return nil, &platform.CaptureError{Reason: "GetDC failed"}
	}
	defer win.ReleaseDC(hwnd, hdc)

	memDC := win.CreateCompatibleDC(hdc)
	if memDC == 0 {
		return nil, &platform.CaptureError{Reason: "CreateCompatibleDC failed"}
	}
	defer win.DeleteDC(memDC)

	bitmap := win.CreateCompatibleBitmap(hdc, int32(width), int32(height))
	if bitmap == 0 {
		return nil, &platform.CaptureError{Reason: "CreateCompatibleBitmap failed"}
	}
	defer win.DeleteObject(win.HGDIOBJ(bitmap))

	old := win.SelectObject(memDC, win.HGDIOBJ(bitmap))
	if old == 0 {
		return nil, &platform.CaptureError{Reason: "SelectObject failed"}
	}
	defer win.SelectObject(memDC, old)

	ret, _, _ := procPrintWindow.Call(uintptr(hwnd), uintptr(memDC), pwRenderFullContent)
	if ret == 0 {
		return nil, &platform.CaptureError{Reason: "window refused to render (PrintWindow returned FALSE)"}
	}

	return bitmapToRGBA(hdc, bitmap, width, height)
}

// bitmapToRGBA reads the bitmap back as a 32bpp top-down DIB and
// converts BGRA to RGBA with opaque alpha.
func bitmapToRGBA(hdc win.HDC, bitmap win.HBITMAP, width, height int) (*image.RGBA, error) {
	var header win.BITMAPINFOHEADER
	header.BiSize = uint32(unsafe.Sizeof(header))
	header.BiPlanes = 1
	header.BiBitCount = 32
	header.BiWidth = int32(width)
	header.BiHeight = int32(-height) // top-down rows
	header.BiCompression = win.BI_RGB
	header.BiSizeImage = 0

	bitmapDataSize := uintptr(((int64(width)*int64(header.BiBitCount) + 31) / 32) * 4 * int64(height))
	hmem := win.GlobalAlloc(win.GMEM_MOVEABLE, bitmapDataSize)
	if hmem == 0 {
		return nil, &platform.CaptureError{Reason: "GlobalAlloc failed"}
	}
	defer win.GlobalFree(hmem)
	memptr := win.GlobalLock(hmem)
	if memptr == nil {
		return nil, &platform.CaptureError{Reason: "GlobalLock failed"}
	}
	defer win.GlobalUnlock(hmem)

	if win.GetDIBits(hdc, bitmap, 0, uint32(height), (*uint8)(memptr), (*win.BITMAPINFO)(unsafe.Pointer(&header)), win.DIB_RGB_COLORS) == 0 {
		return nil, &platform.CaptureError{Reason: "GetDIBits failed"}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	i := 0
	src := uintptr(memptr)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b := *(*uint8)(unsafe.Pointer(src))
			g := *(*uint8)(unsafe.Pointer(src + 1))
			r := *(*uint8)(unsafe.Pointer(src + 2))
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 255
			i += 4
			src += 4
		}
	}
	return img, nil
}
