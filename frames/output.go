package frames

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/icza/mjpeg"
)

// SavePNG writes pm to dir/name, creating dir if needed, and returns the
// full path.
func SavePNG(pm *gg.Pixmap, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating snapshot dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := pm.SavePNG(path); err != nil {
		return "", fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return path, nil
}

// SnapshotName returns the file name used for the snapshot at tick.
func SnapshotName(tick int32) string {
	return fmt.Sprintf("frame_%06d.png", tick)
}

// Recorder appends rendered frames to a Motion-JPEG AVI file.
type Recorder struct {
	aw     mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
	width  int
	height int
	frames int
	path   string
}

// NewRecorder opens path for writing. All frames must be width x height.
func NewRecorder(path string, width, height, fps, quality int) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating video dir: %w", err)
		}
	}
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("creating video %s: %w", path, err)
	}
	return &Recorder{
		aw:     aw,
		opts:   jpeg.Options{Quality: quality},
		width:  width,
		height: height,
		path:   path,
	}, nil
}

// AddFrame encodes pm and appends it to the video.
func (r *Recorder) AddFrame(pm *gg.Pixmap) error {
	if pm.Width() != r.width || pm.Height() != r.height {
		return fmt.Errorf("frame %dx%d does not match video %dx%d", pm.Width(), pm.Height(), r.width, r.height)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, view(pm), &r.opts); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("adding frame: %w", err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Path returns the output file path.
func (r *Recorder) Path() string {
	return r.path
}

// Close finalizes the AVI index.
func (r *Recorder) Close() error {
	if err := r.aw.Close(); err != nil {
		return fmt.Errorf("closing video %s: %w", r.path, err)
	}
	return nil
}
