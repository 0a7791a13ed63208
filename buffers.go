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

package geomdraw

import (
	"fmt"
	"structs"

	"github.com/gogpu/gputypes"
	"honnef.co/go/safeish"
)

// Vertex is the unit of GPU-facing output: a position in drawing space and
// an RGB color. The memory layout matches [VertexLayout].
type Vertex struct {
	_     structs.HostLayout
	Pos   [2]float32
	Color [3]float32
}

// vertexStride is the size of a Vertex in bytes.
const vertexStride = 20

// VertexBuffers holds the tessellated triangles of a whole scene.
// Indices come in groups of three and refer to Vertices.
type VertexBuffers struct {
	Vertices []Vertex
	Indices  []uint32
}

// NumTriangles returns the number of triangles in the buffers.
func (vb *VertexBuffers) NumTriangles() int {
	return len(vb.Indices) / 3
}

// VertexBytes returns the vertex data as a byte slice, without copying.
func (vb *VertexBuffers) VertexBytes() []byte {
	return safeish.SliceCast[[]byte](vb.Vertices)
}

// IndexBytes returns the index data as a byte slice, without copying.
func (vb *VertexBuffers) IndexBytes() []byte {
	return safeish.SliceCast[[]byte](vb.Indices)
}

// VertexLayout describes the vertex buffer for pipeline creation:
// position at shader location 0 and color at shader location 1.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: 8, ShaderLocation: 1}, // color
		},
	}
}

// IndexFormat returns the format of the index buffer.
func IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// PrimitiveState returns the primitive assembly state matching the
// buffers: a triangle list with counter-clockwise front faces.
// Culling is disabled.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
}

// Uploader creates GPU buffers. It is implemented by the graphics backend
// of the application.
type Uploader interface {
	// CreateBuffer creates a buffer described by desc and initialized
	// with contents. desc.Size equals len(contents).
	CreateBuffer(desc gputypes.BufferDescriptor, contents []byte) error
}

// Upload hands the vertex buffer and then the index buffer to u.
// Empty buffers cannot be uploaded; in this case the error is [ErrEmpty].
func (vb *VertexBuffers) Upload(u Uploader) error {
	if len(vb.Vertices) == 0 || len(vb.Indices) == 0 {
		return ErrEmpty
	}

	vertexData := vb.VertexBytes()
	err := u.CreateBuffer(gputypes.BufferDescriptor{
		Label: "geomdraw vertices",
		Size:  uint64(len(vertexData)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	}, vertexData)
	if err != nil {
		return fmt.Errorf("vertex buffer: %w", err)
	}

	indexData := vb.IndexBytes()
	err = u.CreateBuffer(gputypes.BufferDescriptor{
		Label: "geomdraw indices",
		Size:  uint64(len(indexData)),
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	}, indexData)
	if err != nil {
		return fmt.Errorf("index buffer: %w", err)
	}
	return nil
}
