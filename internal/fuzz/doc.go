// Package fuzztests houses Go fuzz harnesses that exercise the numeric
// decoders (binary integers/floats, hex, textual float recognition). Its
// goal is to smoke test robustness and guard against panics on arbitrary
// inputs, and to hold the suffix invariants that every parser shares.
//
// Назначение: прогонять произвольные байты через декодеры пакетов
// number и parse и проверять инварианты остатка/позиции ошибки.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: number, parse, internal/testkit.

package fuzztests
