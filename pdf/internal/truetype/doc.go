/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype loads the metrics of TrueType (glyf flavoured sfnt) fonts as needed for
// building PDF font descriptors and width arrays: units per em, vertical metrics, bounding box,
// italic angle, the unicode character map and the horizontal advance widths.
package truetype
