package server

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/golang/protobuf/proto"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gridpath/models"
)

const (
	ActFindPath     = "FindPath"
	ActFindPathResp = "FindPathResp"
)

type wsReq struct {
	MsgId int             `json:"msgId"`
	Act   string          `json:"act"`
	Data  json.RawMessage `json:"data"`
}

// wsRespPb carries a protobuf encoded FindPathResp in Data.
type wsRespPb struct {
	Ret         int32  `json:"ret,omitempty"`
	EchoedMsgId int32  `json:"echoedMsgId,omitempty"`
	Act         string `json:"act,omitempty"`
	Data        []byte `json:"data,omitempty"`
}

// serveWs answers each FindPath message on the connection in order until the
// peer closes it.
func (s *Server) serveWs(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		req := &wsReq{}
		if err := conn.ReadJSON(req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		resp := s.handleWsReq(req)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("websocket write", zap.Error(err))
			return
		}
	}
}

func (s *Server) handleWsReq(req *wsReq) *wsRespPb {
	resp := &wsRespPb{
		EchoedMsgId: int32(req.MsgId),
		Act:         ActFindPathResp,
	}
	if req.Act != ActFindPath {
		s.logger.Info("unknown act", zap.String("act", req.Act), zap.Int("msgId", req.MsgId))
		resp.Ret = models.RetBadRequest
		return resp
	}

	var findPathResp *models.FindPathResp
	pathReq := &models.FindPathReq{}
	if err := json.Unmarshal(req.Data, pathReq); err != nil {
		findPathResp = models.NewErrorResp(err)
	} else {
		findPathResp, _ = s.solve(pathReq)
	}

	data, err := proto.Marshal(findPathResp)
	if err != nil {
		s.logger.Error("marshal FindPathResp", zap.Error(err))
		resp.Ret = models.RetBadRequest
		return resp
	}
	resp.Ret = findPathResp.Ret
	resp.Data = data
	return resp
}
