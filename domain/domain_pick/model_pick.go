package domain_pick

import (
	"github.com/squirtles/musicroad/util/geo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pick 用户在地图上留下的音乐推荐
type Pick struct {
	ID            string       `json:"id"`
	Song          Song         `json:"song"`
	Comment       string       `json:"comment"`
	CreatedAt     int64        `json:"created_at"` // epoch 秒
	CreatedBy     string       `json:"created_by"`
	FavoriteCount int          `json:"favorite_count"`
	Location      geo.Location `json:"location"`
}

type Song struct {
	Title       string   `json:"title"`
	AlbumTitle  string   `json:"album_title"`
	Artists     []string `json:"artists"`
	ImageURL    string   `json:"image_url"`
	PreviewURL  string   `json:"preview_url"`
	ExternalURL string   `json:"external_url"`
}

// PickDocument picks 集合中的存储结构
type PickDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Song          SongDocument       `bson:"song"`
	Comment       string             `bson:"comment"`
	CreatedAt     int64              `bson:"created_at"`
	CreatedBy     string             `bson:"created_by"`
	FavoriteCount int                `bson:"favorite_count"`
	Location      *LocationDocument  `bson:"location,omitempty"`
	GeoHash       string             `bson:"geo_hash"`
}

type SongDocument struct {
	Title       string   `bson:"title"`
	AlbumTitle  string   `bson:"album_title"`
	Artists     []string `bson:"artists"`
	ImageURL    string   `bson:"image_url"`
	PreviewURL  string   `bson:"preview_url"`
	ExternalURL string   `bson:"external_url"`
}

// LocationDocument 字段用指针区分缺失与 0
type LocationDocument struct {
	Lat *float64 `bson:"lat"`
	Lng *float64 `bson:"lng"`
}

// GeoLocation 位置缺失或越界时返回 false
func (d *PickDocument) GeoLocation() (geo.Location, bool) {
	if d.Location == nil || d.Location.Lat == nil || d.Location.Lng == nil {
		return geo.Location{}, false
	}
	l := geo.NewLocation(*d.Location.Lat, *d.Location.Lng)
	if l.Validate() != nil {
		return geo.Location{}, false
	}
	return l, true
}

// ToPick 文档转领域模型，位置不完整的文档无法转换
func (d *PickDocument) ToPick() (Pick, bool) {
	loc, ok := d.GeoLocation()
	if !ok {
		return Pick{}, false
	}

	artists := make([]string, len(d.Song.Artists))
	copy(artists, d.Song.Artists)

	return Pick{
		ID: d.ID.Hex(),
		Song: Song{
			Title:       d.Song.Title,
			AlbumTitle:  d.Song.AlbumTitle,
			Artists:     artists,
			ImageURL:    d.Song.ImageURL,
			PreviewURL:  d.Song.PreviewURL,
			ExternalURL: d.Song.ExternalURL,
		},
		Comment:       d.Comment,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		FavoriteCount: d.FavoriteCount,
		Location:      loc,
	}, true
}

// NewPickDocument 领域模型转存储结构并计算 geo_hash；ID 非法时保持为空由数据库生成
func NewPickDocument(p Pick) *PickDocument {
	lat, lng := p.Location.Latitude, p.Location.Longitude
	doc := &PickDocument{
		Song: SongDocument{
			Title:       p.Song.Title,
			AlbumTitle:  p.Song.AlbumTitle,
			Artists:     p.Song.Artists,
			ImageURL:    p.Song.ImageURL,
			PreviewURL:  p.Song.PreviewURL,
			ExternalURL: p.Song.ExternalURL,
		},
		Comment:       p.Comment,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		FavoriteCount: p.FavoriteCount,
		Location:      &LocationDocument{Lat: &lat, Lng: &lng},
		GeoHash:       geo.Encode(p.Location),
	}
	if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
		doc.ID = oid
	}
	return doc
}
