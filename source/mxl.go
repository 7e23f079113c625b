package source

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/signadot/scorex/debug"
	"github.com/signadot/scorex/parse"

	"github.com/klauspost/compress/zip"
)

const containerPath = "META-INF/container.xml"

var zipMagic = []byte("PK\x03\x04")

// IsMXL reports whether d is a zip archive, as compressed MusicXML is.
func IsMXL(d []byte) bool {
	return bytes.HasPrefix(d, zipMagic)
}

// Unpack returns the score held in a compressed MusicXML container. The
// score is the first rootfile listed in META-INF/container.xml, or the
// first .xml or .musicxml file outside META-INF when there is no
// container description.
func Unpack(d []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(d), int64(len(d)))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid mxl archive: %w", ErrSource, err)
	}
	files := map[string]*zip.File{}
	for _, f := range zr.File {
		files[f.Name] = f
	}
	name := ""
	if cf := files[containerPath]; cf != nil {
		cd, err := readZipFile(cf)
		if err != nil {
			return nil, err
		}
		name, err = rootFile(cd)
		if err != nil {
			return nil, err
		}
	} else {
		for _, f := range zr.File {
			if strings.HasPrefix(f.Name, "META-INF/") {
				continue
			}
			switch strings.ToLower(path.Ext(f.Name)) {
			case ".xml", ".musicxml":
				name = f.Name
			}
			if name != "" {
				break
			}
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: mxl archive has no score", ErrSource)
	}
	f := files[name]
	if f == nil {
		return nil, fmt.Errorf("%w: mxl rootfile %q missing from archive", ErrSource, name)
	}
	if debug.Source() {
		debug.Logf("source: unpacking %s\n", name)
	}
	return readZipFile(f)
}

func rootFile(container []byte) (string, error) {
	doc, err := parse.Parse(container, parse.ParseWhitespace(false), parse.ParseComments(false))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSource, containerPath, err)
	}
	root := doc.RootElement()
	for _, rf := range root.Find("rootfiles/rootfile") {
		if p := rf.AttrOr("full-path", ""); p != "" {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s lists no rootfile", ErrSource, containerPath)
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrSource, f.Name, err)
	}
	defer rc.Close()
	d, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSource, f.Name, err)
	}
	return d, nil
}
