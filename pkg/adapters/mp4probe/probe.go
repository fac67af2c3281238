// Package mp4probe inspects finalized MP4/MOV files produced by the
// transcoder.
package mp4probe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Info summarizes the video track of an encoded output file.
type Info struct {
	// FastStart reports whether the moov box precedes the mdat box, i.e.
	// the container metadata sits at the front for streaming playback.
	FastStart bool
	// Width and Height are the video track dimensions in pixels.
	Width  int
	Height int
	// FrameCount is the number of video samples in the file.
	FrameCount int
	// Codec is the sample entry FourCC, e.g. "avc1".
	Codec string
	// Fragmented reports whether the file uses movie fragments.
	Fragmented bool
}

// File opens and probes the file at path.
func File(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	return Reader(f)
}

// Reader probes an MP4/MOV from an io.ReadSeeker.
func Reader(rs io.ReadSeeker) (*Info, error) {
	mp4File, err := mp4.DecodeFile(rs)
	if err != nil {
		return nil, fmt.Errorf("decode mp4: %w", err)
	}

	info := &Info{
		FastStart:  moovBeforeMdat(mp4File),
		Fragmented: mp4File.IsFragmented(),
	}

	if mp4File.IsFragmented() {
		if err := fillFromFragments(mp4File, info); err != nil {
			return nil, err
		}
		return info, nil
	}

	if err := fillFromMoov(mp4File.Moov, info); err != nil {
		return nil, err
	}
	return info, nil
}

// moovBeforeMdat walks the top-level boxes in file order.
func moovBeforeMdat(f *mp4.File) bool {
	for _, box := range f.Children {
		switch box.Type() {
		case "moov":
			return true
		case "mdat":
			return false
		}
	}
	return false
}

// fillFromMoov reads dimensions, codec and sample count from a progressive
// file's moov box.
func fillFromMoov(moov *mp4.MoovBox, info *Info) error {
	if moov == nil {
		return fmt.Errorf("no moov box found")
	}

	trak := findVideoTrak(moov)
	if trak == nil {
		return fmt.Errorf("no video track found")
	}

	fillDimensions(trak, info)

	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stsz != nil {
		info.FrameCount = int(stbl.Stsz.SampleNumber)
	}
	if stbl.Stsd != nil && len(stbl.Stsd.Children) > 0 {
		info.Codec = stbl.Stsd.Children[0].Type()
	}

	return nil
}

// fillFromFragments reads dimensions and codec from the init segment and
// counts samples across all fragments.
func fillFromFragments(f *mp4.File, info *Info) error {
	if f.Init == nil || f.Init.Moov == nil {
		return fmt.Errorf("fragmented file has no init segment")
	}

	trak := findVideoTrak(f.Init.Moov)
	if trak == nil {
		return fmt.Errorf("no video track found")
	}
	trackID := trak.Tkhd.TrackID

	fillDimensions(trak, info)

	stsd := trak.Mdia.Minf.Stbl.Stsd
	if stsd != nil && len(stsd.Children) > 0 {
		info.Codec = stsd.Children[0].Type()
	}

	var trex *mp4.TrexBox
	if f.Init.Moov.Mvex != nil {
		for _, t := range f.Init.Moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	for _, seg := range f.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != trackID {
					continue
				}
				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return fmt.Errorf("get samples: %w", err)
				}
				info.FrameCount += len(samples)
			}
		}
	}

	return nil
}

// findVideoTrak returns the first track with a "vide" handler.
func findVideoTrak(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

// fillDimensions reads the track header's fixed-point dimensions.
func fillDimensions(trak *mp4.TrakBox, info *Info) {
	if trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}
}
