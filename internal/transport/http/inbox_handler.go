package httptransport

import (
	"github.com/gin-gonic/gin"

	"halforms/backend/internal/domain"
)

// root 返回 API 入口
func (h *Handler) root(c *gin.Context) {
	OK(c, h.links(c).rootModel())
}

func (h *Handler) listInboxes(c *gin.Context) {
	page, err := h.inboxes.List(pageableFromQuery(c, h.pagination))
	if err != nil {
		respondError(c, err)
		return
	}
	OK(c, h.links(c).inboxPage(page))
}

func (h *Handler) getInbox(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	inbox, err := h.inboxes.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	OK(c, h.links(c).inboxModel(inbox))
}

func (h *Handler) createInbox(c *gin.Context) {
	var input domain.InboxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	inbox, err := h.inboxes.Create(&input)
	if err != nil {
		respondError(c, err)
		return
	}

	links := h.links(c)
	Created(c, links.inbox(inbox.ID), links.inboxModel(inbox))
}

func (h *Handler) updateInbox(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input domain.InboxInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	inbox, err := h.inboxes.Update(id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	OK(c, h.links(c).inboxModel(inbox))
}

func (h *Handler) deleteInbox(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.inboxes.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	Deleted(c)
}
