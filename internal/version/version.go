// Package version реализует разбор и сравнение версий релизов.
//
// Версии каталога не являются строгим semver: patch-компонент может
// отсутствовать ("3.7"), поэтому готовые semver-библиотеки их отвергают.
// Вместо приведения версий к чужому формату — две утилиты под наш формат:
// точечно-разделённые неотрицательные числа, без знаков и суффиксов.
package version

import (
	"strconv"
	"strings"
)

// IsWellFormed проверяет, что версия состоит только из чисел,
// разделённых точками. Пустые компоненты (двойная точка, точка в конце)
// не являются числом и отвергаются.
func IsWellFormed(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// Compare сравнивает две версии покомпонентно как числа.
//
// Перед сравнением нулевые компоненты в хвосте отбрасываются,
// поэтому "3.7.0" эквивалентна "3.7". Версия из одних нулей
// ("0.0.0") после отбрасывания становится пустой и равна любой
// другой версии из одних нулей.
//
// Возвращает -1 если a < b, 0 если равны, 1 если a > b.
// Корректность формата не проверяется — для этого есть IsWellFormed;
// на неверном формате результат не определён.
func Compare(a, b string) int {
	ap := trimZeros(components(a))
	bp := trimZeros(components(b))

	for i := 0; i < len(ap) && i < len(bp); i++ {
		switch {
		case ap[i] < bp[i]:
			return -1
		case ap[i] > bp[i]:
			return 1
		}
	}

	// общий префикс совпал: после отбрасывания нулей более длинная
	// последовательность гарантированно имеет ненулевой хвост
	switch {
	case len(ap) < len(bp):
		return -1
	case len(ap) > len(bp):
		return 1
	default:
		return 0
	}
}

// components разбивает версию на числовые компоненты.
func components(s string) []int {
	parts := strings.Split(s, ".")
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, _ := strconv.Atoi(part)
		nums[i] = n
	}
	return nums
}

// trimZeros отбрасывает нулевые компоненты с конца.
// Может вернуть пустой срез — для версий из одних нулей.
func trimZeros(nums []int) []int {
	for len(nums) > 0 && nums[len(nums)-1] == 0 {
		nums = nums[:len(nums)-1]
	}
	return nums
}
