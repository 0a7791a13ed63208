// seehuhn.de/go/geomdraw - tessellate styled 2D geometry for GPU upload
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package geomdraw converts styled 2D geometry into triangle buffers for
// upload to a GPU.
//
// The input is a list of [StyledGeom] values in application space, for
// example map features measured in metres. [Assemble] maps every primitive
// into drawing space using a [Viewport], converts it into a vector path
// ([BuildPath]), tessellates the path ([Tessellator]) and appends the
// triangles to a single pair of vertex and index buffers ([VertexBuffers]).
//
// Drawing space is the normalized coordinate system of the GPU: the
// viewport covers [-1/aspect, 1/aspect] × [-1, 1], where aspect is the
// width/height ratio of the [Screen]. Points are drawn as discs of fixed
// pixel radius, polylines as stroked ribbons and polygons are filled.
//
// Primitives which cannot be drawn are skipped and reported individually,
// see [PrimitiveError]. An unusable viewport fails the whole call.
package geomdraw

//go:generate go run ./testcases/export
