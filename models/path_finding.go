package models

import (
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"

	"gridpath/astar"
	"gridpath/grid"
)

// Values of the ret field.
const (
	RetOK         = 1000
	RetBadRequest = 1001
	RetNoPath     = 1002
)

type Point struct {
	X int32 `protobuf:"varint,1,opt,name=x,proto3" json:"x"`
	Y int32 `protobuf:"varint,2,opt,name=y,proto3" json:"y"`
}

func (m *Point) Reset()         { *m = Point{} }
func (m *Point) String() string { return proto.CompactTextString(m) }
func (*Point) ProtoMessage()    {}

func (m *Point) toGrid() grid.Point {
	return grid.Point{X: int(m.X), Y: int(m.Y)}
}

// FindPathReq carries a grid as row-major cell values (0 walkable, anything
// else blocked) plus the two endpoints.
type FindPathReq struct {
	Width  int32   `protobuf:"varint,1,opt,name=width,proto3" json:"width"`
	Height int32   `protobuf:"varint,2,opt,name=height,proto3" json:"height"`
	Cells  []int32 `protobuf:"varint,3,rep,packed,name=cells,proto3" json:"cells"`
	Start  *Point  `protobuf:"bytes,4,opt,name=start,proto3" json:"start,omitempty"`
	End    *Point  `protobuf:"bytes,5,opt,name=end,proto3" json:"end,omitempty"`
}

func (m *FindPathReq) Reset()         { *m = FindPathReq{} }
func (m *FindPathReq) String() string { return proto.CompactTextString(m) }
func (*FindPathReq) ProtoMessage()    {}

func (m *FindPathReq) Grid() (*grid.Grid, error) {
	array := make([]int, len(m.Cells))
	for i, v := range m.Cells {
		array[i] = int(v)
	}
	return grid.FromArray(array, int(m.Width), int(m.Height))
}

// Endpoints returns start and end, failing when either is missing.
func (m *FindPathReq) Endpoints() (grid.Point, grid.Point, error) {
	if m.Start == nil || m.End == nil {
		return grid.Point{}, grid.Point{}, errors.New("start and end are required")
	}
	return m.Start.toGrid(), m.End.toGrid(), nil
}

type FindPathResp struct {
	Ret      int32    `protobuf:"varint,1,opt,name=ret,proto3" json:"ret"`
	Found    bool     `protobuf:"varint,2,opt,name=found,proto3" json:"found"`
	Path     []*Point `protobuf:"bytes,3,rep,name=path,proto3" json:"path"`
	Cost     float64  `protobuf:"fixed64,4,opt,name=cost,proto3" json:"cost"`
	Expanded int32    `protobuf:"varint,5,opt,name=expanded,proto3" json:"expanded"`
	Err      string   `protobuf:"bytes,6,opt,name=err,proto3" json:"err,omitempty"`
}

func (m *FindPathResp) Reset()         { *m = FindPathResp{} }
func (m *FindPathResp) String() string { return proto.CompactTextString(m) }
func (*FindPathResp) ProtoMessage()    {}

func NewFindPathResp(result astar.Result) *FindPathResp {
	resp := &FindPathResp{
		Ret:      RetNoPath,
		Found:    result.Found,
		Cost:     result.Cost,
		Expanded: int32(result.Expanded),
	}
	if result.Found {
		resp.Ret = RetOK
		resp.Path = make([]*Point, 0, len(result.Path))
		for _, pt := range result.Path {
			resp.Path = append(resp.Path, &Point{X: int32(pt.X), Y: int32(pt.Y)})
		}
	}
	return resp
}

func NewErrorResp(err error) *FindPathResp {
	return &FindPathResp{
		Ret: RetBadRequest,
		Err: err.Error(),
	}
}
