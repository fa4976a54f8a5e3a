//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// settingsDirName gdata 在应用私有目录下使用的子目录
const settingsDirName = "saves"

// EnsureStorageDir 确保 Android 设置目录存在并可写
// gdata 使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录，
// 必须在 gdata.Open 之前调用。
func EnsureStorageDir() error {
	root := GetStoragePath()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}
	dir := filepath.Join(root, settingsDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回应用私有目录，检测失败时返回空字符串
func GetStoragePath() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackage 从 /proc/self/cmdline 读取进程名，即应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
