package httptransport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"halforms/backend/internal/domain"
	"halforms/backend/internal/hal"
)

const (
	apiPath    = "/api"
	inboxesRel = "inboxes"
	messageRel = "messages"
	parentRel  = "parent"
)

// InboxModel 收件箱的 HAL-FORMS 表示
type InboxModel struct {
	domain.Inbox
	Links     hal.Links     `json:"_links"`
	Templates hal.Templates `json:"_templates,omitempty"`
}

// MessageModel 消息的 HAL-FORMS 表示
type MessageModel struct {
	domain.Message
	Links     hal.Links     `json:"_links"`
	Templates hal.Templates `json:"_templates,omitempty"`
}

// linkBuilder 根据外部地址拼接资源链接
type linkBuilder struct {
	base string
}

// newLinkBuilder 优先使用配置的外部地址，否则根据请求推断
func newLinkBuilder(c *gin.Context, baseURL string) linkBuilder {
	if baseURL != "" {
		return linkBuilder{base: baseURL}
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return linkBuilder{base: scheme + "://" + c.Request.Host}
}

func (b linkBuilder) root() string {
	return b.base + apiPath
}

func (b linkBuilder) inboxes() string {
	return b.base + apiPath + "/inboxes"
}

func (b linkBuilder) inbox(id int64) string {
	return b.inboxes() + "/" + strconv.FormatInt(id, 10)
}

func (b linkBuilder) messages(inboxID int64) string {
	return b.inbox(inboxID) + "/messages"
}

func (b linkBuilder) message(inboxID, id int64) string {
	return b.messages(inboxID) + "/" + strconv.FormatInt(id, 10)
}

func (b linkBuilder) rootModel() hal.RepresentationModel {
	links := hal.Links{}
	links.Add(hal.RelSelf, b.root())
	links.AddTemplated(inboxesRel, b.inboxes())
	return hal.RepresentationModel{Links: links}
}

func (b linkBuilder) inboxLinks(inbox domain.Inbox) hal.Links {
	links := hal.Links{}
	links.Add(hal.RelSelf, b.inbox(inbox.ID))
	links.AddTemplated(messageRel, b.messages(inbox.ID))
	return links
}

// inboxModel 单个收件箱的完整表示，带更新与删除操作
func (b linkBuilder) inboxModel(inbox domain.Inbox) InboxModel {
	return InboxModel{
		Inbox: inbox,
		Links: b.inboxLinks(inbox),
		Templates: hal.NewTemplates(
			hal.Affordance{Method: http.MethodPut, Properties: hal.Required("name", "description")},
			hal.Affordance{Name: "delete", Method: http.MethodDelete},
		),
	}
}

// inboxPage 分页集合中的条目只带链接
func (b linkBuilder) inboxPage(page domain.Page[domain.Inbox]) hal.PagedModel[InboxModel] {
	items := make([]InboxModel, 0, len(page.Items))
	for _, inbox := range page.Items {
		items = append(items, InboxModel{Inbox: inbox, Links: b.inboxLinks(inbox)})
	}

	meta := pageMetadata(page)
	return hal.NewPagedModel(inboxesRel, items,
		meta,
		hal.PageLinks(b.inboxes(), meta, page.HasPrevious(), page.HasNext()),
		hal.NewTemplates(hal.Affordance{Method: http.MethodPost, Properties: hal.Required("name", "description")}),
	)
}

func (b linkBuilder) messageLinks(msg domain.Message) hal.Links {
	links := hal.Links{}
	links.Add(hal.RelSelf, b.message(msg.InboxID, msg.ID))
	links.Add(parentRel, b.inbox(msg.InboxID))
	return links
}

func (b linkBuilder) messageModel(msg domain.Message) MessageModel {
	return MessageModel{
		Message: msg,
		Links:   b.messageLinks(msg),
		Templates: hal.NewTemplates(
			hal.Affordance{Method: http.MethodPut, Properties: hal.Required("title", "content")},
			hal.Affordance{Name: "delete", Method: http.MethodDelete},
		),
	}
}

func (b linkBuilder) messagePage(inboxID int64, page domain.Page[domain.Message]) hal.PagedModel[MessageModel] {
	items := make([]MessageModel, 0, len(page.Items))
	for _, msg := range page.Items {
		items = append(items, MessageModel{Message: msg, Links: b.messageLinks(msg)})
	}

	meta := pageMetadata(page)
	model := hal.NewPagedModel(messageRel, items,
		meta,
		hal.PageLinks(b.messages(inboxID), meta, page.HasPrevious(), page.HasNext()),
		hal.NewTemplates(hal.Affordance{Method: http.MethodPost, Properties: hal.Required("title", "content")}),
	)
	model.Links.Add(parentRel, b.inbox(inboxID))
	return model
}

func pageMetadata[T any](page domain.Page[T]) hal.PageMetadata {
	return hal.PageMetadata{
		Size:          page.Pageable.Size,
		TotalElements: page.Total,
		TotalPages:    page.TotalPages(),
		Number:        page.Pageable.Page,
	}
}
