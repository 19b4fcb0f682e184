package token

import (
	"encoding/json"
)

// Roles restrict what a token may do with the resources its selectors
// match.
type CacheRole string

const (
	CachePermitNone CacheRole = "none"
	CacheReadWrite  CacheRole = "read_write"
	CacheReadOnly   CacheRole = "read_only"
	CacheWriteOnly  CacheRole = "write_only"
)

type TopicRole string

const (
	TopicPermitNone TopicRole = "none"
	TopicReadWrite  TopicRole = "read_write"
	TopicReadOnly   TopicRole = "read_only"
	TopicWriteOnly  TopicRole = "write_only"
)

type FunctionRole string

const (
	FunctionPermitNone FunctionRole = "none"
	FunctionInvoke     FunctionRole = "invoke"
)

// selector narrows a permission to one name or a name prefix. Both empty
// means all resources of that kind.
type selector struct {
	Name   string `json:"name,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

type cachePermission struct {
	Role  CacheRole `json:"role"`
	Cache selector  `json:"cache"`
	Item  selector  `json:"item"`
}

type topicPermission struct {
	Role  TopicRole `json:"role"`
	Cache selector  `json:"cache"`
	Topic selector  `json:"topic"`
}

type functionPermission struct {
	Role     FunctionRole `json:"role"`
	Cache    selector     `json:"cache"`
	Function selector     `json:"function"`
}

type permissionEntry struct {
	Cache    *cachePermission    `json:"cache_permissions,omitempty"`
	Topic    *topicPermission    `json:"topic_permissions,omitempty"`
	Function *functionPermission `json:"function_permissions,omitempty"`
}

type permissionsMessage struct {
	SuperUser   bool              `json:"super_user,omitempty"`
	Permissions []permissionEntry `json:"permissions,omitempty"`
}

// CachePermissions grants access to cache data. The zero builder permits
// nothing: no role, all caches, all items.
type CachePermissions struct {
	perm cachePermission
}

// NewCachePermissions starts a cache grant with no access.
func NewCachePermissions() *CachePermissions {
	return &CachePermissions{perm: cachePermission{Role: CachePermitNone}}
}

// Role sets the access role.
func (p *CachePermissions) Role(role CacheRole) *CachePermissions {
	p.perm.Role = role
	return p
}

// CacheName restricts the grant to one cache.
func (p *CachePermissions) CacheName(name string) *CachePermissions {
	p.perm.Cache = selector{Name: name}
	return p
}

// ItemKey restricts the grant to one key.
func (p *CachePermissions) ItemKey(key string) *CachePermissions {
	p.perm.Item = selector{Name: key}
	return p
}

// ItemKeyPrefix restricts the grant to keys beginning with prefix.
func (p *CachePermissions) ItemKeyPrefix(prefix string) *CachePermissions {
	p.perm.Item = selector{Prefix: prefix}
	return p
}

// TopicPermissions grants access to topics. The zero builder permits
// nothing: no role, all caches, all topics.
type TopicPermissions struct {
	perm topicPermission
}

// NewTopicPermissions starts a topic grant with no access.
func NewTopicPermissions() *TopicPermissions {
	return &TopicPermissions{perm: topicPermission{Role: TopicPermitNone}}
}

// Role sets the access role.
func (p *TopicPermissions) Role(role TopicRole) *TopicPermissions {
	p.perm.Role = role
	return p
}

// CacheName restricts the grant to topics in one cache.
func (p *TopicPermissions) CacheName(name string) *TopicPermissions {
	p.perm.Cache = selector{Name: name}
	return p
}

// TopicName restricts the grant to one topic.
func (p *TopicPermissions) TopicName(name string) *TopicPermissions {
	p.perm.Topic = selector{Name: name}
	return p
}

// TopicNamePrefix restricts the grant to topics beginning with prefix.
func (p *TopicPermissions) TopicNamePrefix(prefix string) *TopicPermissions {
	p.perm.Topic = selector{Prefix: prefix}
	return p
}

// FunctionPermissions grants access to invoke functions. The zero builder
// permits nothing.
type FunctionPermissions struct {
	perm functionPermission
}

// NewFunctionPermissions starts a function grant with no access.
func NewFunctionPermissions() *FunctionPermissions {
	return &FunctionPermissions{perm: functionPermission{Role: FunctionPermitNone}}
}

// Role sets the access role.
func (p *FunctionPermissions) Role(role FunctionRole) *FunctionPermissions {
	p.perm.Role = role
	return p
}

// CacheName restricts the grant to functions in one cache.
func (p *FunctionPermissions) CacheName(name string) *FunctionPermissions {
	p.perm.Cache = selector{Name: name}
	return p
}

// FunctionName restricts the grant to one function.
func (p *FunctionPermissions) FunctionName(name string) *FunctionPermissions {
	p.perm.Function = selector{Name: name}
	return p
}

// FunctionNamePrefix restricts the grant to functions beginning with
// prefix.
func (p *FunctionPermissions) FunctionNamePrefix(prefix string) *FunctionPermissions {
	p.perm.Function = selector{Prefix: prefix}
	return p
}

// Permissions is the top-level grant set for a disposable token.
type Permissions struct {
	msg permissionsMessage
}

// NewPermissions starts an empty, non-superuser grant set.
func NewPermissions() *Permissions {
	return &Permissions{}
}

// SuperUser grants everything. Only a superuser caller can mint a
// superuser token; explicit grants are ignored when set.
func (p *Permissions) SuperUser() *Permissions {
	p.msg.SuperUser = true
	return p
}

// AddCache appends a cache grant.
func (p *Permissions) AddCache(cache *CachePermissions) *Permissions {
	perm := cache.perm
	p.msg.Permissions = append(p.msg.Permissions, permissionEntry{Cache: &perm})
	return p
}

// AddTopic appends a topic grant.
func (p *Permissions) AddTopic(topic *TopicPermissions) *Permissions {
	perm := topic.perm
	p.msg.Permissions = append(p.msg.Permissions, permissionEntry{Topic: &perm})
	return p
}

// AddFunction appends a function grant.
func (p *Permissions) AddFunction(function *FunctionPermissions) *Permissions {
	perm := function.perm
	p.msg.Permissions = append(p.msg.Permissions, permissionEntry{Function: &perm})
	return p
}

func (p *Permissions) marshal() ([]byte, error) {
	return json.Marshal(p.msg)
}
