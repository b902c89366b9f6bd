/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fontembed embeds TrueType and OpenType font programs in a PDF object graph as simple
// fonts covering the codes 0 to 255.
//
// An embedded font consists of the font dictionary, a 256 entry /Widths array, the
// /FontDescriptor with the font-wide metrics scaled to the 1000 unit glyph space and the Flate
// compressed font program referenced as /FontFile3:
//
//	e, err := fontembed.NewEmbedder("GoRegular", data, fontembed.FlagOptions{Nonsymbolic: true})
//	if err != nil {
//		return err
//	}
//	ref, err := e.Embed(store)
//
// Font programs are embedded unmodified: there is no subsetting and no support for composite
// fonts.
package fontembed
