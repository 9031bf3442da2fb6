// Package hal 定义 HAL-FORMS 表示层：超链接、表单模板与分页元数据。
package hal

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// MediaType 是 HAL-FORMS 的响应类型。
const MediaType = "application/prs.hal-forms+json"

// 常用的链接关系
const (
	RelSelf  = "self"
	RelFirst = "first"
	RelPrev  = "prev"
	RelNext  = "next"
	RelLast  = "last"
)

// PageTemplateVariables 是分页参数的 URI 模板片段。
const PageTemplateVariables = "{?page,size,sort}"

// Link 表示一个超链接。
type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
}

// Links 以链接关系为键。
type Links map[string]Link

// Add 添加一个链接并返回自身，便于链式调用。
func (l Links) Add(rel, href string) Links {
	l[rel] = Link{Href: href}
	return l
}

// AddTemplated 添加一个带分页模板变量的链接。
func (l Links) AddTemplated(rel, href string) Links {
	l[rel] = Link{Href: href + PageTemplateVariables, Templated: true}
	return l
}

// Property 描述模板中的一个输入字段。
type Property struct {
	Name     string `json:"name"`
	Required bool   `json:"required,omitempty"`
}

// Template 描述一个可执行的操作（affordance）。
type Template struct {
	Method      string     `json:"method"`
	ContentType string     `json:"contentType,omitempty"`
	Properties  []Property `json:"properties"`
}

// Templates 以模板名称为键。第一个操作固定命名为 "default"。
type Templates map[string]Template

// Affordance 描述资源上可执行的一个操作。
type Affordance struct {
	Name       string
	Method     string
	Properties []Property
}

// NewTemplates 由操作列表构造模板集合。
func NewTemplates(affordances ...Affordance) Templates {
	if len(affordances) == 0 {
		return nil
	}

	templates := make(Templates, len(affordances))
	for i, a := range affordances {
		name := a.Name
		if i == 0 {
			name = "default"
		}

		t := Template{
			Method:     strings.ToLower(a.Method),
			Properties: a.Properties,
		}
		if t.Properties == nil {
			t.Properties = []Property{}
		}
		if a.Method == http.MethodPost || a.Method == http.MethodPut || a.Method == http.MethodPatch {
			t.ContentType = "application/json"
		}
		templates[name] = t
	}
	return templates
}

// Required 是生成必填属性的便捷函数。
func Required(names ...string) []Property {
	props := make([]Property, 0, len(names))
	for _, name := range names {
		props = append(props, Property{Name: name, Required: true})
	}
	return props
}

// PageMetadata 是分页模型中的 page 字段。
type PageMetadata struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// PagedModel 是分页集合资源的表示。
type PagedModel[T any] struct {
	Embedded  map[string][]T `json:"_embedded,omitempty"`
	Links     Links          `json:"_links"`
	Templates Templates      `json:"_templates,omitempty"`
	Page      PageMetadata   `json:"page"`
}

// NewPagedModel 构造分页集合，items 为空时省略 _embedded。
func NewPagedModel[T any](rel string, items []T, meta PageMetadata, links Links, templates Templates) PagedModel[T] {
	model := PagedModel[T]{
		Links:     links,
		Templates: templates,
		Page:      meta,
	}
	if len(items) > 0 {
		model.Embedded = map[string][]T{rel: items}
	}
	return model
}

// RepresentationModel 是只有链接的资源，例如 API 根。
type RepresentationModel struct {
	Links Links `json:"_links"`
}

// PageLinks 生成分页导航链接。
//
// 存在上一页或下一页时才添加 first/last，prev/next 由调用方判定，self 始终存在。
// hasNext 为 true 时要求 meta.Number 小于 meta.TotalPages-1。
func PageLinks(href string, meta PageMetadata, hasPrev, hasNext bool) Links {
	links := Links{}
	links.Add(RelSelf, PageHref(href, meta.Number, meta.Size))

	if hasPrev || hasNext {
		links.Add(RelFirst, PageHref(href, 0, meta.Size))
		links.Add(RelLast, PageHref(href, max(meta.TotalPages-1, 0), meta.Size))
	}
	if hasPrev {
		links.Add(RelPrev, PageHref(href, meta.Number-1, meta.Size))
	}
	if hasNext {
		links.Add(RelNext, PageHref(href, meta.Number+1, meta.Size))
	}
	return links
}

// PageHref 在 href 上附加 page 和 size 查询参数。
func PageHref(href string, number, size int) string {
	query := url.Values{}
	query.Set("page", strconv.Itoa(number))
	query.Set("size", strconv.Itoa(size))
	return href + "?" + query.Encode()
}
