package httptransport

import (
	"github.com/gin-gonic/gin"

	"halforms/backend/internal/domain"
)

func (h *Handler) listMessages(c *gin.Context) {
	inboxID, ok := pathID(c, "id")
	if !ok {
		return
	}

	page, err := h.messages.List(inboxID, pageableFromQuery(c, h.pagination))
	if err != nil {
		respondError(c, err)
		return
	}
	OK(c, h.links(c).messagePage(inboxID, page))
}

func (h *Handler) getMessage(c *gin.Context) {
	inboxID, ok := pathID(c, "id")
	if !ok {
		return
	}
	id, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	msg, err := h.messages.Get(inboxID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	OK(c, h.links(c).messageModel(msg))
}

func (h *Handler) createMessage(c *gin.Context) {
	inboxID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input domain.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.messages.Create(inboxID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	links := h.links(c)
	Created(c, links.message(msg.InboxID, msg.ID), links.messageModel(msg))
}

func (h *Handler) updateMessage(c *gin.Context) {
	inboxID, ok := pathID(c, "id")
	if !ok {
		return
	}
	id, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	var input domain.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.messages.Update(inboxID, id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	OK(c, h.links(c).messageModel(msg))
}

func (h *Handler) deleteMessage(c *gin.Context) {
	inboxID, ok := pathID(c, "id")
	if !ok {
		return
	}
	id, ok := pathID(c, "messageId")
	if !ok {
		return
	}

	if err := h.messages.Delete(inboxID, id); err != nil {
		respondError(c, err)
		return
	}
	Deleted(c)
}
