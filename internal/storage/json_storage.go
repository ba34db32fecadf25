package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
)

type JSONStorage struct {
	FilePath string
	mu       sync.RWMutex
	Data     StorageData
}

type StorageData struct {
	Token    string            `json:"token"`
	Nickname string            `json:"nickname"`
	Drafts   map[string]string `json:"drafts"`
}

func NewJSONStorage(filePath string) (*JSONStorage, error) {
	s := &JSONStorage{
		FilePath: filePath,
		Data: StorageData{
			Drafts: make(map[string]string),
		},
	}
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	if err := s.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if s.Data.Drafts == nil {
		s.Data.Drafts = make(map[string]string)
	}
	return s, nil
}

var _ ports.Storage = (*JSONStorage)(nil)

func (s *JSONStorage) loadFromFile() error {
	file, err := os.ReadFile(s.FilePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(file, &s.Data)
}

func (s *JSONStorage) saveToFile() error {
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.FilePath, data, 0600)
}

func (s *JSONStorage) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data.Token = token
	return s.saveToFile()
}

func (s *JSONStorage) LoadToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Data.Token, nil
}

func (s *JSONStorage) SaveNickname(nickname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data.Nickname = nickname
	return s.saveToFile()
}

func (s *JSONStorage) LoadNickname() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Data.Nickname, nil
}

func (s *JSONStorage) SaveDraft(targetKey string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Data.Drafts[targetKey] = content
	return s.saveToFile()
}

func (s *JSONStorage) LoadDraft(targetKey string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Data.Drafts[targetKey], nil
}

func (s *JSONStorage) ClearDraft(targetKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Data.Drafts, targetKey)
	return s.saveToFile()
}
