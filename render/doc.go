// Package render turns optimized MusicXML into SVG through an external
// engraving engine, and rasterizes SVG pages for previews.
//
// The engine is behind the [Renderer] interface. [Verovio] runs the
// verovio command line tool. Rendering is a single blocking call per
// document; cancel it through the context.
package render
